package domain

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func TestDispatch_RoutesByType(t *testing.T) {
	d := NewEventDispatcher()

	var created, reset int
	d.Register(EventUserCreated, func(ctx context.Context, e *DomainEvent) error {
		created++
		return nil
	})
	d.Register(EventPasswordReset, func(ctx context.Context, e *DomainEvent) error {
		reset++
		return nil
	})

	event := NewEvent(EventUserCreated, "user", "u1", "actor", nil)
	require.NoError(t, d.Dispatch(context.Background(), event))

	assert.Equal(t, 1, created)
	assert.Equal(t, 0, reset)
}

func TestDispatch_NoHandlers(t *testing.T) {
	d := NewEventDispatcher()
	event := NewEvent(EventDocumentDeleted, "field_value", "u1/3", "actor", nil)
	assert.NoError(t, d.Dispatch(context.Background(), event))
}

func TestDispatch_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	d := NewEventDispatcher()

	var order []string
	d.Register(EventUserCreated, func(ctx context.Context, e *DomainEvent) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	d.Register(EventUserCreated, func(ctx context.Context, e *DomainEvent) error {
		order = append(order, "second")
		return nil
	})

	err := d.Dispatch(context.Background(), NewEvent(EventUserCreated, "user", "u1", "actor", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatch_MultipleHandlersRunInOrder(t *testing.T) {
	d := NewEventDispatcher()

	var seen []int
	for i := range 3 {
		d.Register(EventOTPRequested, func(ctx context.Context, e *DomainEvent) error {
			seen = append(seen, i)
			return nil
		})
	}

	require.NoError(t, d.Dispatch(context.Background(), NewEvent(EventOTPRequested, "user", "u1", "u1", nil)))
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestNewEvent(t *testing.T) {
	payload, err := UserCreatedPayload{
		UserID: "u1", Email: "a@b.c", FullName: "Ada", RoleName: "Student", Password: "pw",
	}.ToJSON()
	require.NoError(t, err)

	event := NewEvent(EventUserCreated, "user", "u1", "admin-1", payload)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventUserCreated, event.EventType)
	assert.Equal(t, "user", event.AggregateType)
	assert.Equal(t, "u1", event.AggregateID)
	assert.Equal(t, "admin-1", event.CreatedBy)
	assert.False(t, event.CreatedAt.IsZero())

	// ids are unique per event
	other := NewEvent(EventUserCreated, "user", "u1", "admin-1", nil)
	assert.NotEqual(t, event.EventID, other.EventID)
}
