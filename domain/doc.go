// Package domain define os modelos e a taxonomia de erros compartilhados
// entre os protocolos de coordenação (sessões, throttle, relay, contadores).
//
// Este pacote não depende de net/http nem do substrato concreto.
package domain
