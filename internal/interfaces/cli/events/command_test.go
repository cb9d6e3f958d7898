package events

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbnu/subscribe-service/internal/infrastructure/pubsub"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
)

func TestPrintEvent(t *testing.T) {
	require.NoError(t, biztime.Init("Asia/Seoul"))

	msg := pubsub.EventMessage{
		EventType:   "wallet.recharged",
		AggregateID: "7",
		OccurredAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Payload:     json.RawMessage(`{"amount":100}`),
	}

	var buf bytes.Buffer
	printEvent(&buf, msg, false)
	assert.Contains(t, buf.String(), "2026-03-01 09:00:00")
	assert.Contains(t, buf.String(), "wallet.recharged")
	assert.Contains(t, buf.String(), "user=7")
	assert.NotContains(t, buf.String(), "amount")

	buf.Reset()
	printEvent(&buf, msg, true)
	assert.Contains(t, buf.String(), `{"amount":100}`)
}
