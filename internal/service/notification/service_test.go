package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hoangtrismpk/cham-cong-sub004/internal/domain/notification"
	"github.com/hoangtrismpk/cham-cong-sub004/internal/pkg/push"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	logs          []notification.Log
	tokens        []notification.DeviceToken
	clickedRows   int64
	clickedType   notification.Type
	deletedValues []string
}

func (f *fakeNotificationRepo) InsertLog(ctx context.Context, log *notification.Log) error {
	log.ID = "log-1"
	log.SentAt = time.Now()
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeNotificationRepo) MarkClicked(ctx context.Context, userID, shiftID string, typ notification.Type) (int64, error) {
	f.clickedType = typ
	return f.clickedRows, nil
}

func (f *fakeNotificationRepo) ListLogsByShift(ctx context.Context, userID, shiftID string) ([]notification.Log, error) {
	return f.logs, nil
}

func (f *fakeNotificationRepo) UpsertToken(ctx context.Context, userID, token string) error {
	f.tokens = append(f.tokens, notification.DeviceToken{UserID: userID, Token: token})
	return nil
}

func (f *fakeNotificationRepo) DeleteToken(ctx context.Context, userID, token string) error {
	return nil
}

func (f *fakeNotificationRepo) DeleteTokenValue(ctx context.Context, token string) error {
	f.deletedValues = append(f.deletedValues, token)
	return nil
}

func (f *fakeNotificationRepo) ListTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	return f.tokens, nil
}

type fakePushSender struct {
	sent    []push.Message
	failFor map[string]error
}

func (f *fakePushSender) Send(ctx context.Context, msg push.Message) error {
	if err, ok := f.failFor[msg.Token]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestRecordSent_InvalidType(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(nil, repo, &fakePushSender{})

	err := svc.RecordSent(context.Background(), "user-1", "shift-1", "sms")
	assert.ErrorIs(t, err, notification.ErrInvalidType)
	assert.Empty(t, repo.logs)
}

func TestRecordSent_NeverDeduplicates(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(nil, repo, &fakePushSender{})

	require.NoError(t, svc.RecordSent(context.Background(), "user-1", "shift-1", notification.TypeLocal))
	require.NoError(t, svc.RecordSent(context.Background(), "user-1", "shift-1", notification.TypeLocal))

	assert.Len(t, repo.logs, 2)
}

func TestRecordClicked_TypeScoped(t *testing.T) {
	repo := &fakeNotificationRepo{clickedRows: 1}
	svc := NewNotificationService(nil, repo, &fakePushSender{})

	err := svc.RecordClicked(context.Background(), "user-1", notification.ClickRequest{
		ShiftID: "shift-1",
		Type:    "local",
	})
	require.NoError(t, err)
	assert.Equal(t, notification.TypeLocal, repo.clickedType)
}

func TestRecordClicked_AnyType(t *testing.T) {
	repo := &fakeNotificationRepo{clickedRows: 2}
	svc := NewNotificationService(nil, repo, &fakePushSender{})

	err := svc.RecordClicked(context.Background(), "user-1", notification.ClickRequest{ShiftID: "shift-1"})
	require.NoError(t, err)
	assert.Equal(t, notification.Type(""), repo.clickedType)
}

func TestRecordClicked_MissingShiftID(t *testing.T) {
	svc := NewNotificationService(nil, &fakeNotificationRepo{}, &fakePushSender{})

	err := svc.RecordClicked(context.Background(), "user-1", notification.ClickRequest{})
	assert.Error(t, err)
}

func TestSendToUser_RecordsDispatch(t *testing.T) {
	repo := &fakeNotificationRepo{
		tokens: []notification.DeviceToken{
			{UserID: "user-1", Token: "tok-a"},
			{UserID: "user-1", Token: "tok-b"},
		},
	}
	sender := &fakePushSender{}
	svc := NewNotificationService(nil, repo, sender)

	svc.SendToUser(context.Background(), "user-1", "shift-1", "Hello", "Body")

	assert.Len(t, sender.sent, 2)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, notification.TypeServerPush, repo.logs[0].Type)
	assert.Equal(t, "shift-1", repo.logs[0].ShiftID)
}

func TestSendToUser_PrunesUnregisteredTokens(t *testing.T) {
	repo := &fakeNotificationRepo{
		tokens: []notification.DeviceToken{
			{UserID: "user-1", Token: "dead"},
			{UserID: "user-1", Token: "alive"},
		},
	}
	sender := &fakePushSender{failFor: map[string]error{"dead": push.ErrUnregistered}}
	svc := NewNotificationService(nil, repo, sender)

	svc.SendToUser(context.Background(), "user-1", "shift-1", "Hello", "Body")

	assert.Equal(t, []string{"dead"}, repo.deletedValues)
	assert.Len(t, sender.sent, 1)
	assert.Len(t, repo.logs, 1)
}

func TestSendToUser_AllSendsFail_NoDispatchRecorded(t *testing.T) {
	repo := &fakeNotificationRepo{
		tokens: []notification.DeviceToken{{UserID: "user-1", Token: "tok-a"}},
	}
	sender := &fakePushSender{failFor: map[string]error{"tok-a": errors.New("fcm down")}}
	svc := NewNotificationService(nil, repo, sender)

	svc.SendToUser(context.Background(), "user-1", "shift-1", "Hello", "Body")

	assert.Empty(t, repo.logs)
}

func TestSendToUser_NoTokens(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sender := &fakePushSender{}
	svc := NewNotificationService(nil, repo, sender)

	svc.SendToUser(context.Background(), "user-1", "shift-1", "Hello", "Body")

	assert.Empty(t, sender.sent)
	assert.Empty(t, repo.logs)
}
