package service

// Broadcaster pushes live events to session monitors. The WebSocket hub
// implements it; services only know this interface.
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
