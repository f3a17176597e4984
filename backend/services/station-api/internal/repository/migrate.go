package repository

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS stations (
	storage_id      BIGSERIAL PRIMARY KEY,
	station_id      TEXT NOT NULL UNIQUE,
	name            TEXT NOT NULL,
	address         TEXT NOT NULL,
	city            TEXT NOT NULL,
	state           TEXT NOT NULL,
	zip_code        TEXT NOT NULL,
	latitude        DOUBLE PRECISION NOT NULL,
	longitude       DOUBLE PRECISION NOT NULL,
	power_output    DOUBLE PRECISION NOT NULL,
	status          TEXT NOT NULL DEFAULT 'inactive',
	connector_types JSONB NOT NULL DEFAULT '[]',
	created_at      TIMESTAMPTZ NOT NULL,
	last_updated    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id    BIGSERIAL PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
);
`

// Migrate creates the tables the service needs if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
