package model

import "time"

// CwlList is a named, saved roster snapshot. The message is the rendered
// text that was generated when the list was saved.
type CwlList struct {
	ID      int32     `json:"id"`
	Name    string    `json:"name"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

// PlayerAssignment links a player to a clan with an ordinal position.
// ListID is 0 when the assignment does not belong to a saved list.
type PlayerAssignment struct {
	ID       int32 `json:"id"`
	PlayerID int32 `json:"playerId"`
	ClanID   int32 `json:"clanId"`
	Position int   `json:"position"`
	ListID   int32 `json:"listId,omitempty"`
}
