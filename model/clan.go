package model

import (
	"strings"
	"time"
)

type League string

const (
	LEAGUE_UNKNOWN    League = ""
	LEAGUE_CHAMPION_1 League = "Champion I"
	LEAGUE_CHAMPION_2 League = "Champion II"
	LEAGUE_CHAMPION_3 League = "Champion III"
	LEAGUE_MASTER_1   League = "Master I"
	LEAGUE_MASTER_2   League = "Master II"
	LEAGUE_MASTER_3   League = "Master III"
	LEAGUE_CRYSTAL_1  League = "Crystal I"
	LEAGUE_CRYSTAL_2  League = "Crystal II"
	LEAGUE_CRYSTAL_3  League = "Crystal III"
	LEAGUE_GOLD_1     League = "Gold I"
	LEAGUE_GOLD_2     League = "Gold II"
	LEAGUE_GOLD_3     League = "Gold III"
	LEAGUE_SILVER_1   League = "Silver I"
	LEAGUE_SILVER_2   League = "Silver II"
	LEAGUE_SILVER_3   League = "Silver III"
	LEAGUE_BRONZE_1   League = "Bronze I"
	LEAGUE_BRONZE_2   League = "Bronze II"
	LEAGUE_BRONZE_3   League = "Bronze III"
)

var leagues = []League{
	LEAGUE_CHAMPION_1, LEAGUE_CHAMPION_2, LEAGUE_CHAMPION_3,
	LEAGUE_MASTER_1, LEAGUE_MASTER_2, LEAGUE_MASTER_3,
	LEAGUE_CRYSTAL_1, LEAGUE_CRYSTAL_2, LEAGUE_CRYSTAL_3,
	LEAGUE_GOLD_1, LEAGUE_GOLD_2, LEAGUE_GOLD_3,
	LEAGUE_SILVER_1, LEAGUE_SILVER_2, LEAGUE_SILVER_3,
	LEAGUE_BRONZE_1, LEAGUE_BRONZE_2, LEAGUE_BRONZE_3,
}

func ParseLeague(s string) League {
	s = strings.TrimSpace(s)
	for _, l := range leagues {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return LEAGUE_UNKNOWN
}

func (l League) String() string {
	return string(l)
}

// The CWL war sizes supported by the game.
var allowedCapacities = []int{15, 30}

func IsAllowedCapacity(c int) bool {
	for _, a := range allowedCapacities {
		if c == a {
			return true
		}
	}
	return false
}

type Clan struct {
	ID       int32     `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	League   League    `json:"league"`
	Created  time.Time `json:"created"`
}

// ClanWithPlayers is a clan together with its roster, ordered by position.
type ClanWithPlayers struct {
	Clan
	Players []AssignedPlayer `json:"players"`
}
