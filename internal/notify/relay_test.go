package notify

import (
	"context"
	"errors"
	"testing"

	"gig-hire/internal/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRelay_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	relay := NewRedisRelay(rdb, "gighire.notifications", "instance-a")

	mock.ExpectPublish("gighire.notifications",
		`{"origin":"instance-a","actor_id":"user1","message":"You have been hired for \"Logo\"!"}`).SetVal(1)

	err := relay.Publish(context.Background(), "user1", models.Notification{Message: `You have been hired for "Logo"!`})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRelay_PublishError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	relay := NewRedisRelay(rdb, "gighire.notifications", "instance-a")

	mock.ExpectPublish("gighire.notifications", `{"origin":"instance-a","actor_id":"user1","message":"hi"}`).
		SetErr(errors.New("connection refused"))

	err := relay.Publish(context.Background(), "user1", models.Notification{Message: "hi"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRelay_Handle(t *testing.T) {
	relay := NewRedisRelay(nil, "gighire.notifications", "instance-a")

	tests := []struct {
		name        string
		payload     string
		wantActor   string
		wantMessage string
		wantCalled  bool
	}{
		{
			name:        "foreign_origin_delivered",
			payload:     `{"origin":"instance-b","actor_id":"user1","message":"hired"}`,
			wantActor:   "user1",
			wantMessage: "hired",
			wantCalled:  true,
		},
		{
			name:    "own_origin_ignored",
			payload: `{"origin":"instance-a","actor_id":"user1","message":"hired"}`,
		},
		{
			name:    "malformed_payload_ignored",
			payload: `{not json`,
		},
		{
			name:    "missing_actor_ignored",
			payload: `{"origin":"instance-b","message":"hired"}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			relay.handle(context.Background(), tc.payload, func(_ context.Context, actorID string, n models.Notification) bool {
				called = true
				require.Equal(t, tc.wantActor, actorID)
				require.Equal(t, tc.wantMessage, n.Message)
				return true
			})
			require.Equal(t, tc.wantCalled, called)
		})
	}
}
