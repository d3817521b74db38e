// Package application contém o caso de uso do throttle de admissão.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: Service.Decide(ctx, key) retorna uma Decision (allow/deny +
// retry-after) ou um erro de infraestrutura que o chamador trata como
// falha dura.
package application
