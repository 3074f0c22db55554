package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) AssignPlayerToClan(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	a, err := db.assignPlayerToClan(ctx, playerID, clanID, position, listID)
	if err != nil && isUniqueViolation(err) {
		// A concurrent assignment for the same player scope committed
		// between our delete and insert. Retry once.
		a, err = db.assignPlayerToClan(ctx, playerID, clanID, position, listID)
		if err != nil && isUniqueViolation(err) {
			return nil, ErrAssignmentConflict
		}
	}
	return a, err
}

func (db *postgresDB) assignPlayerToClan(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting assignment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkRowExists(ctx, tx, `SELECT 1 FROM players WHERE id=@id`, playerID, ErrPlayerNotFound); err != nil {
		return nil, err
	}
	if err := checkRowExists(ctx, tx, `SELECT 1 FROM clans WHERE id=@id`, clanID, ErrClanNotFound); err != nil {
		return nil, err
	}

	a, err := assignInTx(ctx, tx, playerID, clanID, position, listID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing assignment for player %d: %w", playerID, err)
	}
	return a, nil
}

func (db *postgresDB) RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error) {
	const query = `DELETE FROM player_assignments WHERE player_id=@playerID AND clan_id=@clanID`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"playerID": playerID, "clanID": clanID})
	if err != nil {
		return false, fmt.Errorf("error removing player %d from clan %d: %w", playerID, clanID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (db *postgresDB) MovePlayerBetweenClans(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error) {
	ok, err := db.movePlayerBetweenClans(ctx, playerID, fromClanID, toClanID)
	if err != nil && isUniqueViolation(err) {
		ok, err = db.movePlayerBetweenClans(ctx, playerID, fromClanID, toClanID)
		if err != nil && isUniqueViolation(err) {
			return false, ErrAssignmentConflict
		}
	}
	return ok, err
}

func (db *postgresDB) movePlayerBetweenClans(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("error starting move transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the destination clan row so concurrent movers targeting the
	// same roster serialize before reading the max position.
	var one int
	err = tx.QueryRow(ctx, `SELECT 1 FROM clans WHERE id=@id FOR UPDATE`, pgx.NamedArgs{"id": toClanID}).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrClanNotFound
		}
		return false, fmt.Errorf("error locking clan %d: %w", toClanID, err)
	}

	if err := checkRowExists(ctx, tx, `SELECT 1 FROM players WHERE id=@id`, playerID, ErrPlayerNotFound); err != nil {
		return false, err
	}

	const nextPosQuery = `SELECT COALESCE(MAX(position), -1) + 1 FROM player_assignments WHERE clan_id=@clanID`
	var nextPos int
	if err := tx.QueryRow(ctx, nextPosQuery, pgx.NamedArgs{"clanID": toClanID}).Scan(&nextPos); err != nil {
		return false, fmt.Errorf("error finding next position in clan %d: %w", toClanID, err)
	}

	const remove = `DELETE FROM player_assignments WHERE player_id=@playerID AND clan_id=@clanID`
	if _, err := tx.Exec(ctx, remove, pgx.NamedArgs{"playerID": playerID, "clanID": fromClanID}); err != nil {
		return false, fmt.Errorf("error removing player %d from clan %d: %w", playerID, fromClanID, err)
	}

	if _, err := assignInTx(ctx, tx, playerID, toClanID, nextPos, 0); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("error committing move of player %d: %w", playerID, err)
	}
	return true, nil
}

func (db *postgresDB) SetPlayerPosition(ctx context.Context, playerID, clanID int32, position int) (bool, error) {
	const query = `UPDATE player_assignments SET position=@position WHERE player_id=@playerID AND clan_id=@clanID`

	args := pgx.NamedArgs{
		"position": position,
		"playerID": playerID,
		"clanID":   clanID,
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return false, fmt.Errorf("error setting position of player %d in clan %d: %w", playerID, clanID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (db *postgresDB) GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error) {
	clans, err := db.GetClans(ctx)
	if err != nil {
		return nil, err
	}

	const query = `SELECT p.id, p.name, p.townhall, p.created, pa.position
					FROM players p
					JOIN player_assignments pa ON p.id = pa.player_id
					WHERE pa.clan_id=@clanID AND (@listID = 0 OR pa.list_id=@listID)
					ORDER BY pa.position ASC`

	results := make([]model.ClanWithPlayers, 0, len(clans))
	for _, clan := range clans {
		args := pgx.NamedArgs{
			"clanID": clan.ID,
			"listID": listID,
		}
		rows, err := db.pool.Query(ctx, query, args)
		if err != nil {
			return nil, fmt.Errorf("error listing players of clan %d: %w", clan.ID, err)
		}

		players := make([]model.AssignedPlayer, 0, clan.Capacity)
		for rows.Next() {
			var p model.AssignedPlayer
			var created pgtype.Timestamptz
			if err := rows.Scan(&p.ID, &p.Name, &p.Townhall, &created, &p.Position); err != nil {
				return nil, fmt.Errorf("error scanning roster player of clan %d: %w", clan.ID, err)
			}
			p.Created = created.Time
			players = append(players, p)
		}

		results = append(results, model.ClanWithPlayers{Clan: clan, Players: players})
	}

	return results, nil
}

// assignInTx replaces whatever assignment the player holds in the given list
// scope with a new row. listID == 0 is stored as NULL.
func assignInTx(ctx context.Context, tx pgx.Tx, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	const remove = `DELETE FROM player_assignments
					WHERE player_id=@playerID AND COALESCE(list_id, 0)=@listID`

	const insert = `INSERT INTO player_assignments (player_id, clan_id, position, list_id)
					VALUES (@playerID, @clanID, @position, @listID)
					RETURNING id`

	if _, err := tx.Exec(ctx, remove, pgx.NamedArgs{"playerID": playerID, "listID": listID}); err != nil {
		return nil, fmt.Errorf("error removing previous assignment of player %d: %w", playerID, err)
	}

	args := pgx.NamedArgs{
		"playerID": playerID,
		"clanID":   clanID,
		"position": position,
		"listID": pgtype.Int4{
			Int32: listID,
			Valid: listID != 0,
		},
	}

	a := &model.PlayerAssignment{
		PlayerID: playerID,
		ClanID:   clanID,
		Position: position,
		ListID:   listID,
	}
	if err := tx.QueryRow(ctx, insert, args).Scan(&a.ID); err != nil {
		return nil, fmt.Errorf("error inserting assignment of player %d to clan %d: %w", playerID, clanID, err)
	}
	return a, nil
}

func checkRowExists(ctx context.Context, tx pgx.Tx, query string, id int32, notFound error) error {
	var one int
	err := tx.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("error checking row %d: %w", id, err)
	}
	return nil
}
