package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []string

	d.Subscribe(EventLogout, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+e.UserID)
		return errors.New("first failed")
	})
	d.Subscribe(EventLogout, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.UserID)
		return nil
	})
	d.Subscribe(EventLoginFailed, func(_ context.Context, e Event) error {
		seen = append(seen, "unrelated")
		return nil
	})

	err := d.Publish(context.Background(), New(EventLogout, "alice"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.Equal(t, []string{"first:alice", "second:alice"}, seen)
}

func TestDispatcher_PublishWithoutListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventTokenRejected, "")))
}

func TestEvent_WithReasonAndPath(t *testing.T) {
	e := New(EventLoginFailed, "bob").WithReason(errors.New("bad password")).WithPath("/api/v1/login")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "bad password", e.Reason)
	assert.Equal(t, "/api/v1/login", e.Path)
	assert.False(t, e.Timestamp.IsZero())

	assert.Empty(t, New(EventLogout, "bob").WithReason(nil).Reason)
}
