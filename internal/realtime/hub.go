// Package realtime pushes events to connected browsers over WebSocket.
package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is the envelope written to every socket.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client is one WebSocket connection of an authenticated user.
type Client struct {
	ID     string
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(userID uint, conn *websocket.Conn) *Client {
	return &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
}

type delivery struct {
	userID  uint
	payload []byte
}

// Hub keeps the connections of each user. All state is owned by Run.
type Hub struct {
	clients    map[uint]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	deliver    chan delivery
	count      chan chan int
	done       chan struct{}
	log        *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan delivery, 256),
		count:      make(chan chan int),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the registry until ctx is done, then closes every client. Calls
// made after Run returned are no-ops.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					close(c.Send)
				}
			}
			h.clients = make(map[uint]map[*Client]struct{})
			return

		case c := <-h.register:
			if h.clients[c.UserID] == nil {
				h.clients[c.UserID] = make(map[*Client]struct{})
			}
			h.clients[c.UserID][c] = struct{}{}
			h.log.WithFields(logrus.Fields{"user_id": c.UserID, "client": c.ID}).Debug("ws client registered")

		case c := <-h.unregister:
			h.drop(c)

		case d := <-h.deliver:
			for c := range h.clients[d.userID] {
				select {
				case c.Send <- d.payload:
				default:
					// Slow consumer
					h.drop(c)
				}
			}

		case reply := <-h.count:
			n := 0
			for _, set := range h.clients {
				n += len(set)
			}
			reply <- n
		}
	}
}

func (h *Hub) drop(c *Client) {
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.Send)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
	h.log.WithFields(logrus.Fields{"user_id": c.UserID, "client": c.ID}).Debug("ws client unregistered")
}

// Register reports false when the hub has stopped; the caller owns c then.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// SendToUser queues an event for every open connection of the user. It never
// blocks the caller; events are dropped when the queue is full.
func (h *Hub) SendToUser(userID uint, eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.log.WithError(err).Error("ws marshal failed")
		return
	}
	select {
	case h.deliver <- delivery{userID: userID, payload: payload}:
	default:
		h.log.WithField("user_id", userID).Warn("ws delivery queue full, event dropped")
	}
}

// Connections reports how many sockets are open, or 0 once the hub stopped.
func (h *Hub) Connections() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
