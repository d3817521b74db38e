// Package infra contém implementações concretas (infraestrutura) para os
// contratos definidos no pacote domain.
//
// Exemplos:
//   - WindowStore: janela fixa por chave sobre o substrato compartilhado
//     (INCR + EXPIRE), a implementação distribuída de produção
//   - BucketStore: token bucket por chave usando golang.org/x/time/rate,
//     fallback local para processo único
package infra
