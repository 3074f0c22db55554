package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetContent(ctx context.Context, key string) (*model.Content, error) {
	const query = `SELECT id, key, value, updated FROM content WHERE key=@key`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"key": key})
	c, err := scanContent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("error scanning content %q: %w", key, err)
	}
	return c, nil
}

func (db *postgresDB) GetAllContent(ctx context.Context) ([]model.Content, error) {
	const query = `SELECT id, key, value, updated FROM content ORDER BY key`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}

	results := make([]model.Content, 0, 8)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *c)
	}

	return results, nil
}

func (db *postgresDB) UpsertContent(ctx context.Context, key, value string) (*model.Content, error) {
	const query = `INSERT INTO content (key, value, updated)
					VALUES (@key, @value, @updated)
					ON CONFLICT (key) DO UPDATE SET
						value=excluded.value,
						updated=excluded.updated
					RETURNING id, key, value, updated`

	args := pgx.NamedArgs{
		"key":   key,
		"value": value,
		"updated": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}

	c, err := scanContent(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		return nil, fmt.Errorf("error upserting content %q: %w", key, err)
	}
	return c, nil
}

func scanContent(row pgx.Row) (*model.Content, error) {
	var result model.Content
	var updated pgtype.Timestamptz
	if err := row.Scan(&result.ID, &result.Key, &result.Value, &updated); err != nil {
		return nil, err
	}
	result.Updated = updated.Time
	return &result, nil
}
