package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT id, name, townhall, created FROM players ORDER BY created DESC, id DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}

	results := make([]model.Player, 0, 32)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	const query = `SELECT id, name, townhall, created FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %d: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (name, townhall, created)
					VALUES (@name, @townhall, @created)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"name":     p.Name,
		"townhall": p.Townhall,
		"created": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID, &created); err != nil {
		return fmt.Errorf("error inserting player (%s): %w", p.Name, err)
	}
	p.Created = created.Time
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id int32) error {
	const query = `DELETE FROM players WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) ClearPlayers(ctx context.Context) (int, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM players`)
	if err != nil {
		return 0, fmt.Errorf("error clearing players: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var created pgtype.Timestamptz
	if err := row.Scan(&result.ID, &result.Name, &result.Townhall, &created); err != nil {
		return nil, err
	}
	result.Created = created.Time
	return &result, nil
}
