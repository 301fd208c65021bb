package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

func seedUsers(t *testing.T, st *memstore.Store, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		u := &models.User{Username: name, PasswordHash: "x", FullName: name, Role: models.RoleStudent}
		require.NoError(t, st.CreateUser(context.Background(), u))
		ids = append(ids, u.ID)
	}
	return ids
}

func TestMessageSendDirect(t *testing.T) {
	st := memstore.New()
	ids := seedUsers(t, st, "sender", "receiver")
	svc := NewMessageService(st, nil, nil)
	ctx := context.Background()

	msg, err := svc.Send(ctx, ids[0], models.MessageCreateRequest{ReceiverID: &ids[1], Content: "hello"})
	require.NoError(t, err)
	assert.Positive(t, msg.ID)
	assert.False(t, msg.Read)

	inbox, err := svc.List(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "hello", inbox[0].Content)
}

func TestMessageSendToMissingReceiver(t *testing.T) {
	st := memstore.New()
	ids := seedUsers(t, st, "sender")
	svc := NewMessageService(st, nil, nil)

	ghost := int64(99)
	_, err := svc.Send(context.Background(), ids[0], models.MessageCreateRequest{ReceiverID: &ghost, Content: "hello"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestMessageBroadcastVisibleToEveryone(t *testing.T) {
	st := memstore.New()
	ids := seedUsers(t, st, "sender", "bystander")
	svc := NewMessageService(st, nil, nil)
	ctx := context.Background()

	_, err := svc.Send(ctx, ids[0], models.MessageCreateRequest{Content: "maintenance window tonight"})
	require.NoError(t, err)

	inbox, err := svc.List(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Nil(t, inbox[0].ReceiverID)
}

func TestMarkReadReceiverOnly(t *testing.T) {
	st := memstore.New()
	ids := seedUsers(t, st, "sender", "receiver", "eavesdropper")
	svc := NewMessageService(st, nil, nil)
	ctx := context.Background()

	msg, err := svc.Send(ctx, ids[0], models.MessageCreateRequest{ReceiverID: &ids[1], Content: "hello"})
	require.NoError(t, err)

	_, err = svc.MarkRead(ctx, ids[2], msg.ID)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)

	updated, err := svc.MarkRead(ctx, ids[1], msg.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)
}

func TestMarkReadBroadcastForbidden(t *testing.T) {
	st := memstore.New()
	ids := seedUsers(t, st, "sender", "reader")
	svc := NewMessageService(st, nil, nil)
	ctx := context.Background()

	msg, err := svc.Send(ctx, ids[0], models.MessageCreateRequest{Content: "for everyone"})
	require.NoError(t, err)

	_, err = svc.MarkRead(ctx, ids[1], msg.ID)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
}

func TestMarkReadMissingMessage(t *testing.T) {
	svc := NewMessageService(memstore.New(), nil, nil)

	_, err := svc.MarkRead(context.Background(), 1, 42)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
