// Package events pushes reservation lifecycle events to connected admin
// dashboards over websocket, replacing the old 30-second polling loop.
// Delivery is best-effort: a dashboard that misses an event re-reads the
// authoritative list from the API.
package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"pricna/internal/domain"
)

type EventType string

const (
	ReservationCreated   EventType = "reservation.created"
	ReservationUpdated   EventType = "reservation.updated"
	ReservationCancelled EventType = "reservation.cancelled"
	ReservationDeleted   EventType = "reservation.deleted"
)

type Event struct {
	Type          EventType           `json:"type"`
	Reservation   *domain.Reservation `json:"reservation,omitempty"`
	ReservationID int64               `json:"reservationId,omitempty"`
	At            time.Time           `json:"at"`
}

type Hub struct {
	// each connection carries its own write lock: gorilla/websocket allows
	// at most one concurrent writer per connection, and Broadcast is called
	// from every request goroutine that mutates a reservation
	connections map[*websocket.Conn]*sync.Mutex
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = &sync.Mutex{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast writes the event to every connected dashboard, dropping
// connections that fail.
func (h *Hub) Broadcast(e Event) {
	h.mutex.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.connections))
	for c, mu := range h.connections {
		conns[c] = mu
	}
	h.mutex.RUnlock()

	for c, mu := range conns {
		mu.Lock()
		err := c.WriteJSON(e)
		mu.Unlock()
		if err != nil {
			h.Unregister(c)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.connections {
		_ = c.Close()
		delete(h.connections, c)
	}
}

func (h *Hub) PublishReservationCreated(r *domain.Reservation) {
	h.Broadcast(Event{Type: ReservationCreated, Reservation: r, At: time.Now()})
}

func (h *Hub) PublishReservationUpdated(r *domain.Reservation) {
	h.Broadcast(Event{Type: ReservationUpdated, Reservation: r, At: time.Now()})
}

func (h *Hub) PublishReservationCancelled(r *domain.Reservation) {
	h.Broadcast(Event{Type: ReservationCancelled, Reservation: r, At: time.Now()})
}

func (h *Hub) PublishReservationDeleted(id int64) {
	h.Broadcast(Event{Type: ReservationDeleted, ReservationID: id, At: time.Now()})
}
