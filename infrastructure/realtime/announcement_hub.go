package realtime

import (
	"encoding/json"
	"sync"

	"clipstream/domain/dto"

	"github.com/gin-gonic/gin"
)

// RotationEvent is the SSE payload pushed whenever the carousel index or the
// rotation list changes.
type RotationEvent struct {
	Type    string                  `json:"type"`
	Index   int                     `json:"index"`
	Entries []dto.AnnouncementEntry `json:"entries,omitempty"`
}

// Hub fans RotationEvents out to every connected SSE subscriber. The
// announcement carousel is global, not per-user.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan RotationEvent]struct{}
}

func NewAnnouncementHub() *Hub {
	return &Hub{subs: make(map[chan RotationEvent]struct{})}
}

// Serve registers an SSE stream for the caller and blocks until the client
// disconnects.
func (h *Hub) Serve(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // disable nginx buffering

	ch := make(chan RotationEvent, 8)
	h.addSubscriber(ch)
	defer h.removeSubscriber(ch)

	// Initial comment to keep connection open
	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	for {
		select {
		case evt := <-ch:
			data, _ := json.Marshal(evt)
			_, _ = c.Writer.Write([]byte("event: announcement_rotation\n"))
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write(data)
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *Hub) addSubscriber(ch chan RotationEvent) {
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) removeSubscriber(ch chan RotationEvent) {
	h.mu.Lock()
	delete(h.subs, ch)
	close(ch)
	h.mu.Unlock()
}

// Broadcast delivers the event to all subscribers without blocking; slow
// consumers drop events.
func (h *Hub) Broadcast(evt RotationEvent) {
	h.mu.RLock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	h.mu.RUnlock()
}
