package pubsub

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/domain/wallet"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

var at = time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)

func TestEncodeDecode(t *testing.T) {
	data, err := Encode(wallet.NewPresentedEvent(3, 4, 250, at))
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, wallet.EventTypePresented, msg.EventType)
	assert.Equal(t, "3", msg.AggregateID)
	assert.True(t, msg.OccurredAt.Equal(at))

	var payload struct {
		FromUserID uint64 `json:"from_user_id"`
		ToUserID   uint64 `json:"to_user_id"`
		Amount     int64  `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, uint64(4), payload.ToUserID)
	assert.Equal(t, int64(250), payload.Amount)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"aggregate_id":"1"}`))
	assert.ErrorContains(t, err, "without event_type")
}

// Runs against a real server when SUBSCRIBE_TEST_REDIS_ADDR is set.
func TestRedisEventBus_PublishSubscribe(t *testing.T) {
	addr := os.Getenv("SUBSCRIBE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SUBSCRIBE_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	bus := NewRedisEventBus(client, "subscribe:test:events", logger.NewDiscardLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan EventMessage, 1)
	go func() {
		_ = bus.Subscribe(ctx, func(_ context.Context, msg EventMessage) { received <- msg })
	}()

	// publish until the subscriber is attached
	require.Eventually(t, func() bool {
		_ = bus.Handle(wallet.NewPresentedEvent(1, 2, 10, at))
		select {
		case msg := <-received:
			return msg.EventType == wallet.EventTypePresented
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 4*time.Second, 100*time.Millisecond)
}
