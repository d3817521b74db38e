// Package cache é o substrato compartilhado de key-value/pub-sub sobre o qual
// os quatro protocolos de coordenação rodam (sessões, throttle, relay e
// contadores de uso).
//
// O contrato é mínimo de propósito: get, set com TTL, incremento atômico e
// publish/subscribe em canais nomeados. A conexão é criada uma vez por
// processo e reutilizada por todos os componentes; é o cache (não a
// aplicação) que serve de fronteira de durabilidade entre restarts.
//
// Toda falha de transporte vira domain.ErrStoreUnavailable — quem chama
// decide se isso derruba a operação de negócio (sessão, throttle) ou se é
// só telemetria de melhor esforço (contadores, notificação).
package cache
