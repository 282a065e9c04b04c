package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// RequestEvent is pushed to connected dashboards whenever a stock request is
// created or decided, so pending queues update without a refetch.
type RequestEvent struct {
	Type      string `json:"type"` // request_created, request_approved, request_rejected
	Direction string `json:"direction"`
	RequestID string `json:"request_id"`
	RequestNo string `json:"request_no"`
	Status    string `json:"status"`
	Actor     string `json:"actor"`
}

// BroadcastEvent marshals and queues a request lifecycle event. Fire and
// forget; a full broadcast channel must not block the request path.
func (h *Hub) BroadcastEvent(event RequestEvent) {
	go func() {
		msg, err := json.Marshal(event)
		if err != nil {
			return
		}
		h.Broadcast <- msg
	}()
}
