package notification

import (
	"sync"
	"testing"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHub_PushToUnknownUserIsNoop(t *testing.T) {
	h := NewHub()
	assert.NotPanics(t, func() {
		h.Push(42, &domain.Notification{ID: 1, Message: "hello"})
	})
}

func TestHub_PushDeliversToRegisteredConnection(t *testing.T) {
	h := NewHub()
	c := &connection{userID: 7, send: make(chan []byte, 1)}
	h.register(c)

	h.Push(7, &domain.Notification{ID: 1, Message: "hello"})

	select {
	case msg := <-c.send:
		assert.Contains(t, string(msg), `"type":"notification"`)
		assert.Contains(t, string(msg), "hello")
	default:
		t.Fatal("expected a message on the send channel")
	}
}

func TestHub_PushDropsWhenBufferFull(t *testing.T) {
	h := NewHub()
	c := &connection{userID: 7, send: make(chan []byte, 1)}
	h.register(c)

	h.Push(7, &domain.Notification{ID: 1})
	assert.NotPanics(t, func() {
		h.Push(7, &domain.Notification{ID: 2})
	})
	assert.Len(t, c.send, 1)
}

// A client reconnecting while notifications are being pushed must not crash
// the pushing request: register closes the previous connection's channel, so
// the send has to stay under the hub lock.
func TestHub_PushDuringReconnect(t *testing.T) {
	h := NewHub()
	h.register(&connection{userID: 1, send: make(chan []byte, 1)})

	var wg sync.WaitGroup
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					assert.NotPanics(t, func() {
						h.Push(1, &domain.Notification{ID: 1, Message: "ping"})
					})
				}
			}
		}()
	}

	for i := 0; i < 10000; i++ {
		h.register(&connection{userID: 1, send: make(chan []byte, 1)})
	}
	close(done)
	wg.Wait()
}
