package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

const subscriberBuffer = 16

// Hub fans stored audit rows out to connected SSE clients.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan model.EventLog]struct{}
}

func NewEventHub() *Hub {
	return &Hub{subs: make(map[chan model.EventLog]struct{})}
}

var _ repository.IEventSink = (*Hub)(nil)

// Serve streams "event_log" events until the client disconnects.
func (h *Hub) Serve(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // disable nginx buffering

	ch := h.subscribe()
	defer h.unsubscribe(ch)

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			data, _ := json.Marshal(evt)
			_, _ = c.Writer.Write([]byte("event: event_log\ndata: "))
			_, _ = c.Writer.Write(data)
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		}
	}
}

// Publish never blocks; slow subscribers drop events.
func (h *Hub) Publish(_ context.Context, event *model.EventLog) error {
	if event == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- *event:
		default:
		}
	}
	return nil
}

// Subscribers reports the number of open streams.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) subscribe() chan model.EventLog {
	ch := make(chan model.EventLog, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan model.EventLog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}
