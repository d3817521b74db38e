// Package api liga os protocolos de coordenação aos handlers HTTP.
//
// Os handlers são glue fino: decidem status/corpo e invocam os protocolos.
// Efeitos de melhor esforço (contadores, publish de eventos) nunca mudam a
// resposta — falham com log e a operação de negócio segue.
package api
