package db

import (
	"context"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

type DB interface {
	// Lists all registered players, most recent registration first.
	GetPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)
	// Inserts the player and fills in the generated ID and Created time.
	AddPlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id int32) error
	// Removes every player. Returns the number of rows deleted.
	ClearPlayers(ctx context.Context) (int, error)

	GetContent(ctx context.Context, key string) (*model.Content, error)
	GetAllContent(ctx context.Context) ([]model.Content, error)
	UpsertContent(ctx context.Context, key, value string) (*model.Content, error)

	GetClans(ctx context.Context) ([]model.Clan, error)
	GetClan(ctx context.Context, id int32) (*model.Clan, error)
	AddClan(ctx context.Context, c *model.Clan) error
	DeleteClan(ctx context.Context, id int32) error
	ClearClans(ctx context.Context) (int, error)

	GetCwlLists(ctx context.Context) ([]model.CwlList, error)
	GetCwlList(ctx context.Context, id int32) (*model.CwlList, error)
	AddCwlList(ctx context.Context, l *model.CwlList) error
	DeleteCwlList(ctx context.Context, id int32) error

	// Assigns a player to a clan at the given position. Any previous
	// assignment the player holds in the same list scope is replaced.
	// listID == 0 means the assignment belongs to no saved list.
	AssignPlayerToClan(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error)
	// Returns whether an assignment row was actually removed. A missing
	// row is not an error.
	RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error)
	// Moves a player to the end of the destination roster, removing it
	// from the source roster in the same transaction.
	MovePlayerBetweenClans(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error)
	// Sets the position of an existing assignment directly. Used by the
	// pairwise swap reorder, which never renumbers the rest of the roster.
	SetPlayerPosition(ctx context.Context, playerID, clanID int32, position int) (bool, error)
	// Returns every clan with its roster ordered by position. When listID
	// is non-zero only assignments of that list are included. Clans with
	// no assignments are returned with an empty roster.
	GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error)

	GetPlayerStats(ctx context.Context) (*model.PlayerStats, error)
}
