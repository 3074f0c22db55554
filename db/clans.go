package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetClans(ctx context.Context) ([]model.Clan, error) {
	const query = `SELECT id, name, capacity, league, created FROM clans ORDER BY created DESC, id DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing clans: %w", err)
	}

	results := make([]model.Clan, 0, 8)
	for rows.Next() {
		c, err := scanClan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *c)
	}

	return results, nil
}

func (db *postgresDB) GetClan(ctx context.Context, id int32) (*model.Clan, error) {
	const query = `SELECT id, name, capacity, league, created FROM clans WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	c, err := scanClan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClanNotFound
		}
		return nil, fmt.Errorf("error scanning clan %d: %w", id, err)
	}
	return c, nil
}

func (db *postgresDB) AddClan(ctx context.Context, c *model.Clan) error {
	const query = `INSERT INTO clans (name, capacity, league, created)
					VALUES (@name, @capacity, @league, @created)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"name":     c.Name,
		"capacity": c.Capacity,
		"league":   c.League.String(),
		"created": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&c.ID, &created); err != nil {
		return fmt.Errorf("error inserting clan (%s): %w", c.Name, err)
	}
	c.Created = created.Time
	return nil
}

func (db *postgresDB) DeleteClan(ctx context.Context, id int32) error {
	const query = `DELETE FROM clans WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting clan %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClanNotFound
	}
	return nil
}

func (db *postgresDB) ClearClans(ctx context.Context) (int, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM clans`)
	if err != nil {
		return 0, fmt.Errorf("error clearing clans: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanClan(row pgx.Row) (*model.Clan, error) {
	var result model.Clan
	var league string
	var created pgtype.Timestamptz
	if err := row.Scan(&result.ID, &result.Name, &result.Capacity, &league, &created); err != nil {
		return nil, err
	}
	result.League = model.League(league)
	result.Created = created.Time
	return &result, nil
}
