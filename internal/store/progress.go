package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// progressRepo implements ProgressRepo over the single-row progress table.
type progressRepo struct {
	db *sqlx.DB
}

func (r *progressRepo) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data, `SELECT data FROM progress WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return data, nil
}

func (r *progressRepo) Save(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
