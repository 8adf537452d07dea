package postgres

import (
	"context"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (err error) {
	defer r.observe("contact_create", time.Now(), &err)

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO contacts (id, nombre, email, telefono, asunto, mensaje, created_at)
		VALUES (:id, :nombre, :email, :telefono, :asunto, :mensaje, :created_at)
	`, contact)
	return mapError("contact", err)
}
