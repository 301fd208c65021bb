package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type messageStore interface {
	ListMessages(ctx context.Context, userID int64) ([]models.Message, error)
	GetMessage(ctx context.Context, id int64) (*models.Message, error)
	CreateMessage(ctx context.Context, message *models.Message) error
	MarkMessageRead(ctx context.Context, id int64) (*models.Message, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// MessageService manages support-chat messages. A message without a
// receiver is a broadcast visible to everyone.
type MessageService struct {
	store     messageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs a MessageService instance.
func NewMessageService(st messageStore, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MessageService{store: st, validator: validate, logger: logger}
}

// List returns the caller's conversation, newest first: messages they
// sent, messages addressed to them, and broadcasts.
func (s *MessageService) List(ctx context.Context, userID int64) ([]models.Message, error) {
	messages, err := s.store.ListMessages(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return messages, nil
}

// Send creates a message from the caller. A named receiver must exist.
func (s *MessageService) Send(ctx context.Context, senderID int64, req models.MessageCreateRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}

	if req.ReceiverID != nil {
		if _, err := s.store.GetUser(ctx, *req.ReceiverID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, appErrors.Clone(appErrors.ErrValidation, "receiver does not exist")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up receiver")
		}
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.store.CreateMessage(ctx, message); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create message")
	}
	return message, nil
}

// MarkRead flags a message as read. Only the direct receiver may do
// this; broadcasts have no single reader and stay unread.
func (s *MessageService) MarkRead(ctx context.Context, userID, id int64) (*models.Message, error) {
	message, err := s.store.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch message")
	}

	if message.ReceiverID == nil || *message.ReceiverID != userID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only the receiver can mark a message as read")
	}

	updated, err := s.store.MarkMessageRead(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "message not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark message as read")
	}
	return updated, nil
}
