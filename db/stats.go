package db

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// GetPlayerStats derives the registration counters from the player table.
// "Today" is the calendar day of the injected clock in the server's local
// timezone.
func (db *postgresDB) GetPlayerStats(ctx context.Context) (*model.PlayerStats, error) {
	const query = `SELECT COUNT(*),
						COUNT(*) FILTER (WHERE created >= @dayStart AND created < @dayEnd),
						COALESCE(AVG(townhall), 0)
					FROM players`

	now := db.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	args := pgx.NamedArgs{
		"dayStart": pgtype.Timestamptz{Time: dayStart, Valid: true},
		"dayEnd":   pgtype.Timestamptz{Time: dayStart.AddDate(0, 0, 1), Valid: true},
	}

	var stats model.PlayerStats
	var avg float64
	if err := db.pool.QueryRow(ctx, query, args).Scan(&stats.TotalPlayers, &stats.TodayRegistrations, &avg); err != nil {
		return nil, fmt.Errorf("error computing player stats: %w", err)
	}
	stats.AvgTownhall = math.Round(avg*10) / 10
	return &stats, nil
}
