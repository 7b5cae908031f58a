package services

import (
	"context"
	"errors"
	"testing"

	"insurance-service/internal/event"
	"insurance-service/internal/models"
	"insurance-service/internal/repository"
	"insurance-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type capturingPublisher struct {
	events []event.PushEventModel
	err    error
}

func (p *capturingPublisher) Publish(ctx context.Context, e event.PushEventModel) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func newNotificationFixture(publisher PushPublisher) *NotificationService {
	repo := repository.NewNotificationRepository(store.NewMemoryStore())
	return NewNotificationService(repo, publisher)
}

func boolRef(b bool) *bool { return &b }

// ============================================================================
// TEST SUITE 1: EMISSION
// ============================================================================

func TestEmit_StoresUnreadRecord(t *testing.T) {
	service := newNotificationFixture(nil)
	ctx := context.Background()

	key, err := service.Emit(ctx, "farmer-1", "Claim Filed", "Your claim c1 has been filed.", models.RelatedClaim, "c1")
	require.NoError(t, err)

	notification, err := service.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", notification.UserID)
	assert.Equal(t, "Claim Filed", notification.Title)
	assert.Equal(t, models.RelatedClaim, notification.RelatedType)
	assert.Equal(t, "c1", notification.RelatedID)
	assert.False(t, notification.IsRead)
	assert.Nil(t, notification.ReadAt)
	assert.NotEmpty(t, notification.CreatedAt)
}

func TestEmit_PublishesPushEvent(t *testing.T) {
	publisher := &capturingPublisher{}
	service := newNotificationFixture(publisher)

	key, err := service.Emit(context.Background(), "farmer-1", "Claim Approved", "Your claim c1 has been approved.", models.RelatedClaim, "c1")
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	pushed := publisher.events[0]
	assert.Equal(t, key, pushed.NotificationID)
	assert.Equal(t, "farmer-1", pushed.UserID)
	assert.Equal(t, "Claim Approved", pushed.Title)
	assert.NotEmpty(t, pushed.EventID)
}

func TestEmit_PublishFailureDoesNotSurface(t *testing.T) {
	publisher := &capturingPublisher{err: errors.New("broker down")}
	service := newNotificationFixture(publisher)
	ctx := context.Background()

	key, err := service.Emit(ctx, "farmer-1", "Claim Filed", "Your claim c1 has been filed.", models.RelatedClaim, "c1")
	require.NoError(t, err)

	// The record is the source of truth; the push event is best-effort.
	notification, err := service.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", notification.UserID)
}

// ============================================================================
// TEST SUITE 2: READ STATE
// ============================================================================

func TestMarkRead_SetsReadAt(t *testing.T) {
	service := newNotificationFixture(nil)
	ctx := context.Background()

	key, err := service.Emit(ctx, "farmer-1", "Claim Filed", "m", models.RelatedClaim, "c1")
	require.NoError(t, err)

	require.NoError(t, service.MarkRead(ctx, key))

	notification, err := service.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, notification.IsRead)
	require.NotNil(t, notification.ReadAt)
}

func TestMarkRead_Idempotent(t *testing.T) {
	service := newNotificationFixture(nil)
	ctx := context.Background()

	key, err := service.Emit(ctx, "farmer-1", "Claim Filed", "m", models.RelatedClaim, "c1")
	require.NoError(t, err)

	require.NoError(t, service.MarkRead(ctx, key))
	first, err := service.Get(ctx, key)
	require.NoError(t, err)

	require.NoError(t, service.MarkRead(ctx, key))
	second, err := service.Get(ctx, key)
	require.NoError(t, err)

	// Second call is a no-op: the original read timestamp survives.
	assert.Equal(t, first.ReadAt, second.ReadAt)
}

func TestMarkRead_UnknownNotification(t *testing.T) {
	service := newNotificationFixture(nil)
	err := service.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMarkAllRead_CountsOnlyUnread(t *testing.T) {
	service := newNotificationFixture(nil)
	ctx := context.Background()

	first, err := service.Emit(ctx, "farmer-1", "A", "m", models.RelatedSystem, "")
	require.NoError(t, err)
	_, err = service.Emit(ctx, "farmer-1", "B", "m", models.RelatedSystem, "")
	require.NoError(t, err)
	_, err = service.Emit(ctx, "farmer-2", "C", "m", models.RelatedSystem, "")
	require.NoError(t, err)

	require.NoError(t, service.MarkRead(ctx, first))

	updated, err := service.MarkAllRead(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	unread, err := service.List(ctx, models.NotificationFilter{UserID: "farmer-1", IsRead: boolRef(false)})
	require.NoError(t, err)
	assert.Empty(t, unread)

	// Other users' notifications are untouched.
	otherUnread, err := service.List(ctx, models.NotificationFilter{UserID: "farmer-2", IsRead: boolRef(false)})
	require.NoError(t, err)
	assert.Len(t, otherUnread, 1)
}

func TestMarkAllRead_RequiresUserID(t *testing.T) {
	service := newNotificationFixture(nil)
	_, err := service.MarkAllRead(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrValidation)
}

// ============================================================================
// TEST SUITE 3: LISTING
// ============================================================================

func TestList_FiltersByUserAndReadState(t *testing.T) {
	service := newNotificationFixture(nil)
	ctx := context.Background()

	read, err := service.Emit(ctx, "farmer-1", "A", "m", models.RelatedSystem, "")
	require.NoError(t, err)
	unread, err := service.Emit(ctx, "farmer-1", "B", "m", models.RelatedSystem, "")
	require.NoError(t, err)
	require.NoError(t, service.MarkRead(ctx, read))

	all, err := service.List(ctx, models.NotificationFilter{UserID: "farmer-1"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyUnread, err := service.List(ctx, models.NotificationFilter{UserID: "farmer-1", IsRead: boolRef(false)})
	require.NoError(t, err)
	require.Len(t, onlyUnread, 1)
	_, ok := onlyUnread[unread]
	assert.True(t, ok)
}
