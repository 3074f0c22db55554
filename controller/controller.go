package controller

import (
	"context"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/clash"
	"github.com/battiatomatteo/ClanWarMaker-static/db"
	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/itbasis/go-clock"
)

// ValidationError marks input the caller can correct and resubmit. The web
// layer turns it into a 400 instead of a server error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// C encapsulates business logic without worrying about any web layers
type C interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	// Registers a new player. The townhall level must be at least
	// model.MinTownhall and the name must not be empty.
	RegisterPlayer(ctx context.Context, name string, townhall int) (*model.Player, error)
	DeletePlayer(ctx context.Context, id int32) error
	ClearPlayers(ctx context.Context) (int, error)
	// Renders the registered player table as CSV for download.
	PlayersCSV(ctx context.Context) ([]byte, error)

	GetAllContent(ctx context.Context) ([]model.Content, error)
	UpdateContent(ctx context.Context, key, value string) (*model.Content, error)

	ListClans(ctx context.Context) ([]model.Clan, error)
	AddClan(ctx context.Context, name string, capacity int, league string) (*model.Clan, error)
	DeleteClan(ctx context.Context, id int32) error
	ClearClans(ctx context.Context) (int, error)

	// DistributePlayers spreads the players round-robin over the clans
	// without touching the store. Positions are contiguous from 0 in
	// each roster, following the input player order.
	DistributePlayers(players []model.Player, clans []model.Clan) ([]model.ClanWithPlayers, error)
	// SaveDistribution persists a distribution for the given list scope.
	SaveDistribution(ctx context.Context, rosters []model.ClanWithPlayers, listID int32) error
	// AutoDistribute reads all players and clans, distributes them and
	// persists the result in the working (unscoped) assignment set.
	AutoDistribute(ctx context.Context) ([]model.ClanWithPlayers, error)

	AssignPlayer(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error)
	RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error)
	MovePlayer(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error)
	// Sets a player's position inside a clan directly.
	MovePlayerInClan(ctx context.Context, playerID, clanID int32, position int) (bool, error)
	// Exchanges the positions of two players in the same clan. The rest
	// of the roster keeps its numbering.
	SwapPlayers(ctx context.Context, clanID, playerID, otherPlayerID int32) error
	GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error)

	// GenerateMessage renders the canonical CWL roster message.
	GenerateMessage(rosters []model.ClanWithPlayers) string

	ListCwlLists(ctx context.Context) ([]model.CwlList, error)
	GetCwlList(ctx context.Context, id int32) (*model.CwlList, error)
	// Saves the current rosters under a name together with their
	// rendered message.
	CreateCwlList(ctx context.Context, name string) (*model.CwlList, error)
	DeleteCwlList(ctx context.Context, id int32) error

	GetPlayerStats(ctx context.Context) (*model.PlayerStats, error)

	// Looks up the members of a clan from the Clash of Clans API. A
	// single attempt, no caching; failures surface directly.
	LookupClanMembers(ctx context.Context, clanTag string) ([]model.ClashPlayer, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
	clash clash.Client
}

func New(clock clock.Clock, db db.DB, clash clash.Client) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
		clash: clash,
	}
	return c, nil
}
