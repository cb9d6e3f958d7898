package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

func TestInMemoryEventDispatcher_DeliversInOrder(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewDiscardLogger())

	var mu sync.Mutex
	var seen []string
	record := HandlerFunc(func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.GetEventType()+":"+e.GetAggregateID())
		return nil
	})

	require.NoError(t, d.Subscribe("wallet.recharged", record))
	require.NoError(t, d.Subscribe(WildcardEventType, HandlerFunc(func(DomainEvent) error {
		return errors.New("ignored")
	})))
	require.NoError(t, d.Start())

	now := time.Now()
	require.NoError(t, d.Publish(NewBaseEvent("1", "wallet.recharged", now)))
	require.NoError(t, d.Publish(NewBaseEvent("2", "wallet.used", now)))
	require.NoError(t, d.Publish(NewBaseEvent("3", "wallet.recharged", now)))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"wallet.recharged:1", "wallet.recharged:3"}, seen)
}

func TestInMemoryEventDispatcher_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewDiscardLogger())

	count := 0
	require.NoError(t, d.Subscribe("x", HandlerFunc(func(DomainEvent) error { panic("bad handler") })))
	require.NoError(t, d.Subscribe("x", HandlerFunc(func(DomainEvent) error { count++; return nil })))
	require.NoError(t, d.Start())

	require.NoError(t, d.Publish(NewBaseEvent("1", "x", time.Now())))
	require.NoError(t, d.Stop())

	assert.Equal(t, 1, count)
}

func TestInMemoryEventDispatcher_RejectsWhenStopped(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewDiscardLogger())

	assert.Error(t, d.Publish(NewBaseEvent("1", "x", time.Now())))
	assert.Error(t, d.Stop())
	assert.Error(t, d.Subscribe("", HandlerFunc(func(DomainEvent) error { return nil })))
}
