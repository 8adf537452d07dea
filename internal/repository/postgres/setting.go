package postgres

import (
	"context"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

func (r *settingRepository) Get(ctx context.Context, key string) (_ *model.Setting, err error) {
	defer r.observe("setting_get", time.Now(), &err)

	var setting model.Setting
	err = r.db.GetContext(ctx, &setting, `SELECT key, value, updated_at FROM settings WHERE key = $1`, key)
	if err != nil {
		return nil, mapError("setting", err)
	}
	return &setting, nil
}

func (r *settingRepository) Put(ctx context.Context, setting *model.Setting) (err error) {
	defer r.observe("setting_put", time.Now(), &err)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, setting.Key, setting.Value, setting.UpdatedAt)
	return mapError("setting", err)
}
