package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/infrastructure/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// One registry per test binary; promauto registers globally.
var testMetrics = metrics.NewTrackerMetrics()

func newTestClient(hub *Hub, userID uint) *Client {
	// The pumps are never started here, so a nil conn is fine: Push only
	// touches the send channel.
	return NewClient(hub, nil, userID, zap.NewNop())
}

func TestPushWithoutConnection(t *testing.T) {
	hub := NewHub(testMetrics, zap.NewNop())

	err := hub.Push(42, []byte("hello"))
	require.ErrorIs(t, err, ErrNoActiveConnection)
}

func TestPushFansOutToAllConnections(t *testing.T) {
	hub := NewHub(testMetrics, zap.NewNop())

	first := newTestClient(hub, 7)
	second := newTestClient(hub, 7)
	other := newTestClient(hub, 8)
	hub.Register(first)
	hub.Register(second)
	hub.Register(other)

	require.NoError(t, hub.Push(7, []byte("update")))

	assert.Equal(t, []byte("update"), <-first.send)
	assert.Equal(t, []byte("update"), <-second.send)
	assert.Empty(t, other.send, "other users must not receive the payload")
}

func TestPushSkipsFullBuffers(t *testing.T) {
	hub := NewHub(testMetrics, zap.NewNop())

	c := newTestClient(hub, 3)
	hub.Register(c)

	for i := 0; i < sendBufferSize; i++ {
		require.NoError(t, hub.Push(3, []byte("fill")))
	}

	// The buffer is full; the push must neither block nor fail.
	require.NoError(t, hub.Push(3, []byte("overflow")))
	assert.Len(t, c.send, sendBufferSize)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(testMetrics, zap.NewNop())

	c := newTestClient(hub, 5)
	hub.Register(c)
	hub.Unregister(c)

	_, open := <-c.send
	assert.False(t, open, "send channel must be closed on unregister")

	err := hub.Push(5, []byte("late"))
	require.ErrorIs(t, err, ErrNoActiveConnection)

	// Repeat unregister of the same client is a no-op.
	hub.Unregister(c)
}

func TestUnregisterKeepsOtherConnections(t *testing.T) {
	hub := NewHub(testMetrics, zap.NewNop())

	first := newTestClient(hub, 6)
	second := newTestClient(hub, 6)
	hub.Register(first)
	hub.Register(second)

	hub.Unregister(first)

	require.NoError(t, hub.Push(6, []byte("still here")))
	assert.Equal(t, []byte("still here"), <-second.send)
}
