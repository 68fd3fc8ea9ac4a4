package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Wyydra/board/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping to database failed: %w", err)
	}

	log.Info().Str("host", cfg.ConnConfig.Host).Msg("Connected to PostgreSQL")
	return pool, nil
}

// implements port.MessageCollection
type Collection struct {
	db    *pgxpool.Pool
	table string
}

func NewCollection(db *pgxpool.Pool, table string) *Collection {
	return &Collection{
		db:    db,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

// Migrate creates the table with the same shape as the hosted one.
func (c *Collection) Migrate(ctx context.Context) error {
	schema := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`, c.table)

	if _, err := c.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (c *Collection) List(ctx context.Context) ([]domain.Message, error) {
	query := fmt.Sprintf(`
		SELECT id::text, content, created_at
		FROM %s
		ORDER BY created_at DESC, id DESC
	`, c.table)

	rows, err := c.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var (
			m  domain.Message
			id string
		)
		if err := rows.Scan(&id, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.ID = domain.MessageID(id)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (c *Collection) Create(ctx context.Context, content string) (domain.Message, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (content)
		VALUES ($1)
		RETURNING id::text, content, created_at
	`, c.table)

	var (
		m  domain.Message
		id string
	)
	if err := c.db.QueryRow(ctx, query, content).Scan(&id, &m.Content, &m.CreatedAt); err != nil {
		return domain.Message{}, err
	}
	m.ID = domain.MessageID(id)
	return m, nil
}

func (c *Collection) Delete(ctx context.Context, id domain.MessageID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id::text = $1`, c.table)
	if _, err := c.db.Exec(ctx, query, id.String()); err != nil {
		return fmt.Errorf("could not delete message %s: %w", id, err)
	}
	return nil
}
