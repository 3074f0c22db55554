package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetCwlLists(ctx context.Context) ([]model.CwlList, error) {
	const query = `SELECT id, name, message, created FROM cwl_lists ORDER BY created DESC, id DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing cwl lists: %w", err)
	}

	results := make([]model.CwlList, 0, 8)
	for rows.Next() {
		l, err := scanCwlList(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}

	return results, nil
}

func (db *postgresDB) GetCwlList(ctx context.Context, id int32) (*model.CwlList, error) {
	const query = `SELECT id, name, message, created FROM cwl_lists WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanCwlList(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("error scanning cwl list %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) AddCwlList(ctx context.Context, l *model.CwlList) error {
	const query = `INSERT INTO cwl_lists (name, message, created)
					VALUES (@name, @message, @created)
					RETURNING id, created`

	args := pgx.NamedArgs{
		"name":    l.Name,
		"message": l.Message,
		"created": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}

	var created pgtype.Timestamptz
	if err := db.pool.QueryRow(ctx, query, args).Scan(&l.ID, &created); err != nil {
		return fmt.Errorf("error inserting cwl list (%s): %w", l.Name, err)
	}
	l.Created = created.Time
	return nil
}

func (db *postgresDB) DeleteCwlList(ctx context.Context, id int32) error {
	const query = `DELETE FROM cwl_lists WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting cwl list %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListNotFound
	}
	return nil
}

func scanCwlList(row pgx.Row) (*model.CwlList, error) {
	var result model.CwlList
	var created pgtype.Timestamptz
	if err := row.Scan(&result.ID, &result.Name, &result.Message, &created); err != nil {
		return nil, err
	}
	result.Created = created.Time
	return &result, nil
}
