package domain

// Chaves e canais do substrato — lugar único, para os quatro protocolos
// não pisarem nas chaves uns dos outros.

func SessionKey(principalID string) string { return "session:" + principalID }
func ThrottleKey(clientKey string) string  { return "ratelimit:" + clientKey }
func AnalyticsKey(action string) string    { return "analytics:" + action }

const LatestNotificationKey = "latest:employee:notification"

const (
	ChannelEmployeeAdd    = "employee:add"
	ChannelEmployeeUpdate = "employee:update"
	ChannelEmployeeDelete = "employee:delete"
)
