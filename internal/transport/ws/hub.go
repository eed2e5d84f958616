package ws

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAnalysisResult MessageType = "analysis_result"
	MsgSessionEnded   MessageType = "session_ended"
	MsgError          MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages monitor connections per interview session. Several monitors
// (the analyst's console, a supervisor dashboard) can watch one session.
type Hub struct {
	monitors map[string]map[*Connection]bool // sessionID -> connections

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage

	log *logrus.Logger
}

// Connection represents one monitor WebSocket connection
type Connection struct {
	SessionID string
	AnalystID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a session's monitors
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *logrus.Logger) *Hub {
	h := &Hub{
		monitors:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.monitors[conn.SessionID] == nil {
				h.monitors[conn.SessionID] = make(map[*Connection]bool)
			}
			h.monitors[conn.SessionID][conn] = true
			h.mu.Unlock()
			h.log.WithFields(logrus.Fields{
				"sessionId": conn.SessionID,
				"analystId": conn.AnalystID,
			}).Info("monitor connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.monitors[conn.SessionID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.monitors, conn.SessionID)
					}
				}
			}
			h.mu.Unlock()
			h.log.WithField("sessionId", conn.SessionID).Info("monitor disconnected")

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.monitors[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession sends a message to every monitor of a session
// (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
