package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/subtally/subtally/gen/ent"
	"github.com/subtally/subtally/gen/ent/emailmessage"
	"github.com/subtally/subtally/internal/scanner"
)

type MessageRepository interface {
	MarkSeen(ctx context.Context, userID uuid.UUID, msg scanner.Message) (bool, error)
	SetOutcome(ctx context.Context, userID uuid.UUID, messageID string, outcome string) error
}

type messageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMessageRepository(client *ent.Client, logger *slog.Logger) MessageRepository {
	return &messageRepository{
		client: client,
		logger: logger,
	}
}

// MarkSeen inserts the message row and reports whether this call created it.
// The unique (user_id, message_id) index arbitrates: the losing insert of a
// concurrent pair gets a constraint error and reports isNew=false. This is
// the only dedup mechanism; there is no in-process locking.
func (r *messageRepository) MarkSeen(ctx context.Context, userID uuid.UUID, msg scanner.Message) (bool, error) {
	builder := r.client.EmailMessage.Create().
		SetUserID(userID).
		SetMessageID(msg.ID).
		SetSubject(msg.Subject).
		SetSender(msg.Sender)
	if !msg.Date.IsZero() {
		builder = builder.SetReceivedAt(msg.Date)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		r.logger.Error("failed to record email message", "message_id", msg.ID, "error", err)
		return false, err
	}
	return true, nil
}

func (r *messageRepository) SetOutcome(ctx context.Context, userID uuid.UUID, messageID string, outcome string) error {
	n, err := r.client.EmailMessage.Update().
		Where(
			emailmessage.UserID(userID),
			emailmessage.MessageID(messageID),
		).
		SetOutcome(outcome).
		SetProcessedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set message outcome", "message_id", messageID, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("outcome for unknown message", "message_id", messageID, "outcome", outcome)
	}
	return nil
}
