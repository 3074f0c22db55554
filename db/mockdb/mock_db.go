package mockdb

import (
	"context"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ClearPlayers(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) GetContent(ctx context.Context, key string) (*model.Content, error) {
	args := db.Called(ctx, key)

	var c *model.Content
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Content)
	}
	return c, args.Error(1)
}

func (db *DB) GetAllContent(ctx context.Context) ([]model.Content, error) {
	args := db.Called(ctx)

	var r []model.Content
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Content)
	}
	return r, args.Error(1)
}

func (db *DB) UpsertContent(ctx context.Context, key, value string) (*model.Content, error) {
	args := db.Called(ctx, key, value)

	var c *model.Content
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Content)
	}
	return c, args.Error(1)
}

func (db *DB) GetClans(ctx context.Context) ([]model.Clan, error) {
	args := db.Called(ctx)

	var r []model.Clan
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Clan)
	}
	return r, args.Error(1)
}

func (db *DB) GetClan(ctx context.Context, id int32) (*model.Clan, error) {
	args := db.Called(ctx, id)

	var c *model.Clan
	if args.Get(0) != nil {
		c = args.Get(0).(*model.Clan)
	}
	return c, args.Error(1)
}

func (db *DB) AddClan(ctx context.Context, c *model.Clan) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) DeleteClan(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ClearClans(ctx context.Context) (int, error) {
	args := db.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (db *DB) GetCwlLists(ctx context.Context) ([]model.CwlList, error) {
	args := db.Called(ctx)

	var r []model.CwlList
	if args.Get(0) != nil {
		r = args.Get(0).([]model.CwlList)
	}
	return r, args.Error(1)
}

func (db *DB) GetCwlList(ctx context.Context, id int32) (*model.CwlList, error) {
	args := db.Called(ctx, id)

	var l *model.CwlList
	if args.Get(0) != nil {
		l = args.Get(0).(*model.CwlList)
	}
	return l, args.Error(1)
}

func (db *DB) AddCwlList(ctx context.Context, l *model.CwlList) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) DeleteCwlList(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AssignPlayerToClan(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	args := db.Called(ctx, playerID, clanID, position, listID)

	var a *model.PlayerAssignment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.PlayerAssignment)
	}
	return a, args.Error(1)
}

func (db *DB) RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error) {
	args := db.Called(ctx, playerID, clanID)
	return args.Bool(0), args.Error(1)
}

func (db *DB) MovePlayerBetweenClans(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error) {
	args := db.Called(ctx, playerID, fromClanID, toClanID)
	return args.Bool(0), args.Error(1)
}

func (db *DB) SetPlayerPosition(ctx context.Context, playerID, clanID int32, position int) (bool, error) {
	args := db.Called(ctx, playerID, clanID, position)
	return args.Bool(0), args.Error(1)
}

func (db *DB) GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error) {
	args := db.Called(ctx, listID)

	var r []model.ClanWithPlayers
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ClanWithPlayers)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayerStats(ctx context.Context) (*model.PlayerStats, error) {
	args := db.Called(ctx)

	var s *model.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PlayerStats)
	}
	return s, args.Error(1)
}
