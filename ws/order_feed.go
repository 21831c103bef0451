package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Mikjohns10/instabite-backend/services"
	"github.com/Mikjohns10/instabite-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeedHub pushes order lifecycle events to connected restaurant
// clients over WebSocket.
type OrderFeedHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan broadcastEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type broadcastEvent struct {
	RestaurantID uint
	Event        services.OrderEvent
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *OrderFeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish satisfies services.OrderFeed.
func (h *OrderFeedHub) Publish(restaurantID uint, event services.OrderEvent) {
	h.broadcast <- broadcastEvent{RestaurantID: restaurantID, Event: event}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders — the authenticated restaurant receives its own
// order events.
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restID}
	h.register <- sub

	// read loop only to detect disconnect; clients do not send data
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
