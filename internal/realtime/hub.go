// Package realtime implements the broadcast hub: a registry of live
// subscriber connections that new job postings are fanned out to.
//
// All subscriber state is owned by the single goroutine running Hub.Run, so
// registration, removal and iteration never race. Each subscriber gets a
// buffered send channel drained by its own write pump, which keeps delivery
// FIFO per connection and isolates one subscriber's failure from the rest.
package realtime

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jobportel/job-board-api/internal/api/metrics"
	"github.com/jobportel/job-board-api/internal/core/domain"
)

const sendBuffer = 32

// Conn is the minimal connection surface the hub writes to.
type Conn interface {
	WriteMessage(data []byte) error
	Close() error
}

type subscriber struct {
	conn Conn
	send chan []byte

	hub  *Hub
	once sync.Once // guards the unregister request
}

// Hub maintains the live subscriber set and fans out job events.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan []byte
	subs       map[*subscriber]struct{}
	done       chan struct{} // closed when Run returns
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan []byte, 16),
		subs:       make(map[*subscriber]struct{}),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the subscriber set. It must be started exactly once; it returns
// when ctx is cancelled, closing every remaining connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for s := range h.subs {
				h.drop(s)
			}
			return

		case s := <-h.register:
			h.subs[s] = struct{}{}
			metrics.BroadcastSubscribers.Inc()
			// Acknowledge the new connection; nobody else sees this.
			s.send <- connectedPayload()

		case s := <-h.unregister:
			if _, ok := h.subs[s]; ok {
				h.drop(s)
			}

		case payload := <-h.broadcast:
			for s := range h.subs {
				select {
				case s.send <- payload:
					metrics.BroadcastMessagesTotal.Inc()
				default:
					// Buffer full: the subscriber is not keeping up.
					// Delivery is best effort, so it gets dropped the
					// same way a broken connection would.
					metrics.BroadcastSendFailuresTotal.Inc()
					h.drop(s)
				}
			}
		}
	}
}

// drop removes a subscriber and closes its resources. Called only from Run.
func (h *Hub) drop(s *subscriber) {
	delete(h.subs, s)
	close(s.send)
	_ = s.conn.Close()
	metrics.BroadcastSubscribers.Dec()
}

// Subscribe registers conn and starts its write pump. The first message the
// connection receives is the connect acknowledgement; events broadcast before
// the acknowledgement was delivered are never replayed.
func (h *Hub) Subscribe(conn Conn) *Subscription {
	s := &subscriber{conn: conn, send: make(chan []byte, sendBuffer), hub: h}
	go s.writePump()
	select {
	case h.register <- s:
	case <-h.done:
		close(s.send)
		_ = conn.Close()
	}
	return &Subscription{sub: s}
}

// Subscription is the handle returned to the transport layer; closing it
// detaches the connection from the hub.
type Subscription struct {
	sub *subscriber
}

// Close requests unregistration. Safe to call more than once and after the
// hub has already dropped the subscriber.
func (sub *Subscription) Close() {
	sub.sub.requestUnregister()
}

// BroadcastNewJob fans the job out to every live subscriber. It never blocks
// the caller: when the hub is saturated or stopped the event is dropped, as
// delivery carries no guarantee beyond best effort.
func (h *Hub) BroadcastNewJob(job *domain.Job) {
	payload, err := newJobPayload(job)
	if err != nil {
		h.log.Error().Err(err).Str("job_id", job.ID).Msg("failed to encode job event")
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Str("job_id", job.ID).Msg("broadcast queue full, event dropped")
	}
}

func (s *subscriber) requestUnregister() {
	s.once.Do(func() {
		select {
		case s.hub.unregister <- s:
		case <-s.hub.done:
		}
	})
}

// writePump drains the send channel onto the connection. A write failure
// detaches the subscriber; the remaining queued messages are discarded when
// the hub closes the channel.
func (s *subscriber) writePump() {
	for payload := range s.send {
		if err := s.conn.WriteMessage(payload); err != nil {
			s.requestUnregister()
			return
		}
	}
}
