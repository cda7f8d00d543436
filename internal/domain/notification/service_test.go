package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"jobvibe/internal/database/dbtest"
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/paginate"
	"jobvibe/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	channels []string
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels = append(p.channels, channel)
	return p.err
}

type recordingPusher struct {
	mu    sync.Mutex
	users []string
	roles []string
}

func (p *recordingPusher) SendToUser(userID string, _ realtime.Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users = append(p.users, userID)
	return true
}

func (p *recordingPusher) BroadcastToRole(role string, _ realtime.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roles = append(p.roles, role)
	return 1
}

func newTestService(t *testing.T) (*Service, *GormRepository, *recordingPublisher, *recordingPusher) {
	t.Helper()
	db := dbtest.Open(t, &Notification{})
	repo := NewRepository(db)
	pub := &recordingPublisher{}
	push := &recordingPusher{}
	return NewService(repo, pub, push), repo, pub, push
}

func TestEmit_PersistsPublishesAndPushes(t *testing.T) {
	svc, repo, pub, push := newTestService(t)
	ctx := context.Background()

	svc.Emit(ctx, Event{Type: TypeReaction, Title: "New reaction", Recipient: "u1", Data: map[string]any{"feedId": "f1"}})
	svc.Wait()

	page, err := repo.List(ctx, "u1", false, paginate.NewParams(1, 10))
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "New reaction", page.Results[0].Title)
	assert.Equal(t, "f1", page.Results[0].Data["feedId"])
	assert.False(t, page.Results[0].IsRead)

	assert.Equal(t, []string{Channel}, pub.channels)
	assert.Equal(t, []string{"u1"}, push.users)
	assert.Empty(t, push.roles)
}

func TestEmit_AudienceIsNotPersisted(t *testing.T) {
	svc, repo, _, push := newTestService(t)
	ctx := context.Background()

	svc.Emit(ctx, Event{Type: TypeNewFeed, Title: "New post", Audience: "employer"})
	svc.Wait()

	n, err := repo.CountUnread(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"employer"}, push.roles)
}

func TestEmit_SurvivesCanceledRequestAndPublishFailure(t *testing.T) {
	svc, repo, pub, _ := newTestService(t)
	pub.err = errors.New("redis down")

	ctx, cancel := context.WithCancel(context.Background())
	svc.Emit(ctx, Event{Type: TypeMessage, Title: "hi", Recipient: "u2"})
	cancel()
	svc.Wait()

	n, err := repo.CountUnread(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEmit_WithoutTargetIsDropped(t *testing.T) {
	svc, _, pub, push := newTestService(t)

	svc.Emit(context.Background(), Event{Title: "nobody"})
	svc.Wait()

	assert.Empty(t, pub.channels)
	assert.Empty(t, push.users)
	assert.Empty(t, push.roles)
}

func TestReadStateAndOwnership(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Send(ctx, "admin", SendRequest{RecipientID: "u1", Title: "t"})
		require.NoError(t, err)
	}
	other, err := svc.Send(ctx, "admin", SendRequest{RecipientID: "u2", Title: "t"})
	require.NoError(t, err)

	res, err := svc.List(ctx, "u1", false, paginate.NewParams(1, 2))
	require.NoError(t, err)
	assert.Len(t, res.Results, 2)
	assert.Equal(t, int64(3), res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.Equal(t, int64(3), res.UnreadCount)

	// u1 cannot touch u2's notification
	err = svc.MarkRead(ctx, "u1", other.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.Delete(ctx, "u1", other.ID)))

	require.NoError(t, svc.MarkRead(ctx, "u1", res.Results[0].ID))
	count, err := svc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	unread, err := svc.List(ctx, "u1", true, paginate.NewParams(1, 10))
	require.NoError(t, err)
	assert.Len(t, unread.Results, 2)

	updated, err := svc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err = svc.UnreadCount(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSend_RequiresTarget(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Send(context.Background(), "admin", SendRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrNoTarget)

	n, err := svc.Send(context.Background(), "admin", SendRequest{Audience: "candidate", Title: "t"})
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestCleanup_DeletesOnlyOldReadNotifications(t *testing.T) {
	db := dbtest.Open(t, &Notification{})
	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	rows := []*Notification{
		{RecipientID: "u1", Type: TypeSystem, Title: "old read", IsRead: true, CreatedAt: now.Add(-48 * time.Hour)},
		{RecipientID: "u1", Type: TypeSystem, Title: "old unread", CreatedAt: now.Add(-48 * time.Hour)},
		{RecipientID: "u1", Type: TypeSystem, Title: "fresh read", IsRead: true, CreatedAt: now},
	}
	for _, n := range rows {
		require.NoError(t, repo.Create(ctx, n))
	}

	deleted, err := NewCleanup(repo, 24*time.Hour).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var titles []string
	require.NoError(t, db.Model(&Notification{}).Order("title").Pluck("title", &titles).Error)
	assert.Equal(t, []string{"fresh read", "old unread"}, titles)
}
