package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversToEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var calls []string

	d.Subscribe(EventProductCreated, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventProductCreated, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventProductDeleted, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), NewProductEvent(EventProductCreated, "p1", "u1", "Sports"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestNewProductEvent_DeduplicatesCategories(t *testing.T) {
	e := NewProductEvent(EventProductUpdated, "p1", "", "Sports", "", "Sports", "Yoga")

	payload, ok := e.Payload.(ProductChangedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"Sports", "Yoga"}, payload.Categories)
	assert.NotEmpty(t, e.ID)
}
