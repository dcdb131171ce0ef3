package storage

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS feedback (
	id         BIGSERIAL PRIMARY KEY,
	name       VARCHAR(120) NOT NULL DEFAULT '',
	phone      VARCHAR(32) NOT NULL DEFAULT '',
	message    TEXT NOT NULL,
	rating     SMALLINT NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
	is_read    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_feedback_unread ON feedback (created_at DESC) WHERE NOT is_read;
`

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create feedback schema: %w", err)
	}
	return nil
}
