package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-management/internal/events"
)

func TestDispatcherPublishesToSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	var received []events.Event
	d.Subscribe(events.EventUserRegistered, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	event := events.New(events.EventUserRegistered, "user-1", events.UserRegisteredPayload{Email: "a@b.com"})
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, event.ID, received[0].ID)
	assert.Equal(t, "user-1", received[0].UserID)
	assert.NotEmpty(t, received[0].ID)
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(events.EventPasswordChanged, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), events.New(events.EventUserLoggedIn, "user-1", nil)))
	assert.Zero(t, calls)
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	secondCalled := false
	d.Subscribe(events.EventUserStatusChanged, func(context.Context, events.Event) error {
		return errors.New("boom")
	})
	d.Subscribe(events.EventUserStatusChanged, func(context.Context, events.Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), events.New(events.EventUserStatusChanged, "user-1", nil)))
	assert.True(t, secondCalled)
}
