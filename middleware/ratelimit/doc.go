// Package ratelimit fornece o adapter HTTP (net/http) do throttle de admissão.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de net/http)
//   - application: caso de uso (decisão allow/deny/erro de infra) sem net/http
//   - infra: implementações concretas (janela fixa no substrato, token bucket)
//   - ratelimit (este pacote): middleware HTTP + extração de chave +
//     tradução para status/headers
//
// Fluxo no servidor:
//
//  1. Extrai a chave do cliente (IP/header/XFF) — a derivação de identidade
//     é ponto de configuração, não regra fixa
//  2. Chama a camada application para obter a decisão
//  3. Se bloqueado, responde 429; se o substrato falhou, responde 500
//     (sem decisão consistente de admissão a requisição não prossegue)
//  4. Se permitido, chama o próximo handler — rejeição não executa nenhum
//     efeito colateral além da resposta
//
// Variáveis de ambiente do binário (cmd/server) controlam o comportamento,
// como RATE_WINDOW, RATE_MAX_REQUESTS, RATE_STORE e RATE_KEY_HEADER.
package ratelimit
