package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/events"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

// Hub fans events out to websocket clients grouped by group key
// (see events.CafeGroup). It implements events.Publisher.
type Hub struct {
	groups     map[string]map[*websocket.Conn]bool // groupKey -> set of clients
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	Groups []string
	UserID string
}

type broadcastMessage struct {
	GroupKey string
	Envelope envelope
}

type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	SentAt  time.Time   `json:"sent_at"`
}

func NewHub() *Hub {
	return &Hub{
		groups:     make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			for _, key := range sub.Groups {
				if h.groups[key] == nil {
					h.groups[key] = make(map[*websocket.Conn]bool)
				}
				h.groups[key][sub.Conn] = true
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			for _, key := range sub.Groups {
				if _, ok := h.groups[key][sub.Conn]; ok {
					delete(h.groups[key], sub.Conn)
				}
			}
			h.mu.Unlock()
			sub.Conn.Close()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.groups[msg.GroupKey] {
				if err := conn.WriteJSON(msg.Envelope); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.groups[msg.GroupKey], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements events.Publisher. Best effort: if the buffer is full
// the event is dropped rather than blocking the request that produced it.
func (h *Hub) Publish(groupKey, event string, payload interface{}) {
	msg := broadcastMessage{
		GroupKey: groupKey,
		Envelope: envelope{Event: event, Payload: payload, SentAt: time.Now()},
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("ws broadcast buffer full, dropping %s for %s", event, groupKey)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// groupsForRole maps a staff member to the groups their role listens on.
// Admins and managers watch everything in their cafe.
func groupsForRole(role, cafeID string) []string {
	switch role {
	case models.RoleKitchen:
		return []string{events.CafeGroup(cafeID, events.AudienceKitchen)}
	case models.RoleWaiter:
		return []string{events.CafeGroup(cafeID, events.AudienceWaiter)}
	default:
		return []string{
			events.CafeGroup(cafeID, events.AudienceAdmin),
			events.CafeGroup(cafeID, events.AudienceKitchen),
			events.CafeGroup(cafeID, events.AudienceWaiter),
		}
	}
}

// WS route: GET /ws/orders (behind Authentication middleware)
func (h *Hub) HandleOrderSocket(w http.ResponseWriter, r *http.Request) {
	_, _, _, uid := middleware.GetUserFromContext(r)
	role, cafeID := middleware.GetRoleFromContext(r)

	// Super admins are not tied to a cafe; they pick one via query param.
	if role == models.RoleSuperAdmin {
		cafeID = r.URL.Query().Get("cafe_id")
	}
	if cafeID == "" {
		http.Error(w, `{"success": false, "message": "No cafe to subscribe to"}`, http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Groups: groupsForRole(role, cafeID), UserID: uid}
	h.register <- sub

	go h.drain(sub)
}

// drain discards inbound frames; the order socket is one-way. Reading is
// still required to notice the close handshake.
func (h *Hub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
