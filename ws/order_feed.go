package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/sandarunihara/Online-Food-Ordering-System/entity"
	"github.com/sandarunihara/Online-Food-Ordering-System/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed pushes order status changes to connected customers over
// WebSocket. Each customer only ever receives events for their own
// orders.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // customerID -> connections
	broadcast  chan StatusEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

type Subscription struct {
	Conn       *websocket.Conn
	CustomerID uint
}

// StatusEvent is the JSON payload written to subscribers.
type StatusEvent struct {
	OrderID     uint   `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
	TotalPrice  int64  `json:"totalPrice"`
	customerID  uint
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.CustomerID] == nil {
				f.clients[sub.CustomerID] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.CustomerID][sub.Conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.CustomerID][sub.Conn]; ok {
				delete(f.clients[sub.CustomerID], sub.Conn)
				sub.Conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients[ev.customerID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[ev.customerID], conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// PublishStatus is hooked into OrderService.OnStatusChange.
func (f *OrderFeed) PublishStatus(order *entity.Order) {
	f.broadcast <- StatusEvent{
		OrderID:     order.ID,
		OrderStatus: order.OrderStatus,
		TotalPrice:  order.TotalPrice,
		customerID:  order.CustomerID,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders — the subscriber is taken from the JWT, never
// from the request.
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	customerID := utils.CurrentUserID(c)
	if customerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, CustomerID: customerID}
	f.register <- sub

	go f.keepAlive(sub)
}

// keepAlive drains the connection until the client goes away.
func (f *OrderFeed) keepAlive(sub Subscription) {
	defer func() { f.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
