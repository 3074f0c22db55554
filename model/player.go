package model

import (
	"time"
)

// MinTownhall is the minimum townhall level required to register for CWL.
const MinTownhall = 12

type Player struct {
	ID       int32     `json:"id"`
	Name     string    `json:"name"`
	Townhall int       `json:"townhall"`
	Created  time.Time `json:"created"`
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

// AssignedPlayer is a player joined with its position inside a clan roster.
type AssignedPlayer struct {
	Player
	Position int `json:"position"`
}

type PlayerStats struct {
	TotalPlayers       int     `json:"totalPlayers"`
	TodayRegistrations int     `json:"todayRegistrations"`
	AvgTownhall        float64 `json:"avgTownhall"`
}
