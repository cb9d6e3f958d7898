package goroutine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

func TestSafeGo_RunsAndSignalsDone(t *testing.T) {
	var ran atomic.Bool
	done := SafeGo(logger.NewDiscardLogger(), "test", func() { ran.Store(true) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done channel never closed")
	}
	assert.True(t, ran.Load())
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	done := SafeGo(logger.NewDiscardLogger(), "panicky", func() { panic("boom") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("panic was not recovered")
	}
}
