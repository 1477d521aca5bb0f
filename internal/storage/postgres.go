package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps values in the kv_entries table, one row per key.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`

	var value string
	if err := p.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("get %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at`

	if _, err := p.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`

	if _, err := p.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
