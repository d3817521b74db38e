// Package domain define contratos e tipos de domínio do throttle de admissão.
//
// Este pacote não depende de net/http nem de implementações concretas.
// A intenção é permitir testes de unidade puros e desacoplar a regra de
// admissão dos detalhes de infraestrutura (Redis, memória).
package domain
