package domain

// Employee é o registro mantido pelo repositório. Para a camada de
// coordenação ele importa apenas como fonte de gatilho dos eventos employee:*.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// EventMessage é o payload publicado nos canais employee:add|update|delete.
// Entrega é fire-and-forget: sem assinante conectado, a mensagem se perde.
type EventMessage struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Notification é o valor guardado em latest:employee:notification.
// Guarda apenas o evento mais recente (last write wins, TTL de 300s);
// ausência é um estado normal, não um erro.
type Notification struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Type       string `json:"type"` // add | update | delete
}
