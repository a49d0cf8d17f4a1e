package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownEvent struct{}

func (unknownEvent) EventName() string        { return "unknown" }
func (unknownEvent) AggregateID() kernel.UUID { return kernel.NewUUID() }
func (unknownEvent) OccurredAt() time.Time    { return time.Time{} }

func TestEncode_PlacedEvent(t *testing.T) {
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	total, err := kernel.MoneyFromString("25")
	require.NoError(t, err)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	key, body, err := encode(order.PlacedEvent{OrderID: orderID, OwnerID: ownerID, Total: total, Lines: 2, At: at})
	require.NoError(t, err)

	assert.Equal(t, order.EventPlaced, key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "order.placed", decoded["event"])
	assert.Equal(t, orderID.String(), decoded["aggregate_id"])
	assert.Equal(t, "2025-03-01T12:00:00Z", decoded["occurred_at"])

	payload, ok := decoded["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "25.00", payload["total"])
	assert.Equal(t, ownerID.String(), payload["owner_id"])
	assert.InDelta(t, 2, payload["lines"], 0)
}

func TestEncode_DeliveredWithoutAssignee(t *testing.T) {
	key, body, err := encode(order.DeliveredEvent{OrderID: kernel.NewUUID(), At: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, order.EventDelivered, key)
	assert.Contains(t, string(body), `"assignee_id":null`)
}

func TestEncode_AssignedOverride(t *testing.T) {
	crew := kernel.NewUUID()

	_, body, err := encode(order.AssignedEvent{OrderID: kernel.NewUUID(), AssigneeID: crew, Override: true})
	require.NoError(t, err)

	assert.Contains(t, string(body), `"override":true`)
	assert.Contains(t, string(body), crew.String())
}

func TestEncode_UnknownEvent(t *testing.T) {
	_, _, err := encode(unknownEvent{})

	require.Error(t, err)
}
