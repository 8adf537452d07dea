package postgres

import (
	"context"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

const messageColumns = `id, sender_id, sender_name, receiver_id, receiver_name,
	subject, message, message_type, appointment_id, is_read, created_at, read_at`

func (r *messageRepository) Create(ctx context.Context, message *model.Message) (err error) {
	defer r.observe("message_create", time.Now(), &err)

	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES (:id, :sender_id, :sender_name, :receiver_id, :receiver_name,
			:subject, :message, :message_type, :appointment_id, :is_read,
			:created_at, :read_at)
	`
	_, err = r.db.NamedExecContext(ctx, query, message)
	return mapError("message", err)
}

func (r *messageRepository) Get(ctx context.Context, id string) (_ *model.Message, err error) {
	defer r.observe("message_get", time.Now(), &err)

	var message model.Message
	err = r.db.GetContext(ctx, &message, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("message", err)
	}
	return &message, nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID string, limit int) (_ []*model.Message, err error) {
	defer r.observe("message_list", time.Now(), &err)

	messages := []*model.Message{}
	err = r.db.SelectContext(ctx, &messages, `
		SELECT `+messageColumns+` FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, bound(limit))
	if err != nil {
		return nil, mapError("message", err)
	}
	return messages, nil
}

func (r *messageRepository) ListUnreadForReceiver(ctx context.Context, receiverID string, limit int) (_ []*model.Message, err error) {
	defer r.observe("message_list_unread", time.Now(), &err)

	messages := []*model.Message{}
	err = r.db.SelectContext(ctx, &messages, `
		SELECT `+messageColumns+` FROM messages
		WHERE receiver_id = $1 AND NOT is_read
		ORDER BY created_at DESC
		LIMIT $2`, receiverID, bound(limit))
	if err != nil {
		return nil, mapError("message", err)
	}
	return messages, nil
}

func (r *messageRepository) CountUnread(ctx context.Context, receiverID string) (_ int, err error) {
	defer r.observe("message_count_unread", time.Now(), &err)

	var count int
	err = r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND NOT is_read`, receiverID)
	if err != nil {
		return 0, mapError("message", err)
	}
	return count, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) (_ *model.Message, err error) {
	defer r.observe("message_mark_read", time.Now(), &err)

	var message model.Message
	err = r.db.GetContext(ctx, &message, `
		UPDATE messages
		SET is_read = TRUE, read_at = $2
		WHERE id = $1
		RETURNING `+messageColumns, id, time.Now().UTC())
	if err != nil {
		return nil, mapError("message", err)
	}
	return &message, nil
}
