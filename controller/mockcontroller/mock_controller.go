package mockcontroller

import (
	"context"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) RegisterPlayer(ctx context.Context, name string, townhall int) (*model.Player, error) {
	args := c.Called(ctx, name, townhall)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) DeletePlayer(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ClearPlayers(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) PlayersCSV(ctx context.Context) ([]byte, error) {
	args := c.Called(ctx)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}
	return b, args.Error(1)
}

func (c *C) GetAllContent(ctx context.Context) ([]model.Content, error) {
	args := c.Called(ctx)

	var r []model.Content
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Content)
	}
	return r, args.Error(1)
}

func (c *C) UpdateContent(ctx context.Context, key, value string) (*model.Content, error) {
	args := c.Called(ctx, key, value)

	var content *model.Content
	if args.Get(0) != nil {
		content = args.Get(0).(*model.Content)
	}
	return content, args.Error(1)
}

func (c *C) ListClans(ctx context.Context) ([]model.Clan, error) {
	args := c.Called(ctx)

	var r []model.Clan
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Clan)
	}
	return r, args.Error(1)
}

func (c *C) AddClan(ctx context.Context, name string, capacity int, league string) (*model.Clan, error) {
	args := c.Called(ctx, name, capacity, league)

	var clan *model.Clan
	if args.Get(0) != nil {
		clan = args.Get(0).(*model.Clan)
	}
	return clan, args.Error(1)
}

func (c *C) DeleteClan(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ClearClans(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) DistributePlayers(players []model.Player, clans []model.Clan) ([]model.ClanWithPlayers, error) {
	args := c.Called(players, clans)

	var r []model.ClanWithPlayers
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ClanWithPlayers)
	}
	return r, args.Error(1)
}

func (c *C) SaveDistribution(ctx context.Context, rosters []model.ClanWithPlayers, listID int32) error {
	args := c.Called(ctx, rosters, listID)
	return args.Error(0)
}

func (c *C) AutoDistribute(ctx context.Context) ([]model.ClanWithPlayers, error) {
	args := c.Called(ctx)

	var r []model.ClanWithPlayers
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ClanWithPlayers)
	}
	return r, args.Error(1)
}

func (c *C) AssignPlayer(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	args := c.Called(ctx, playerID, clanID, position, listID)

	var a *model.PlayerAssignment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.PlayerAssignment)
	}
	return a, args.Error(1)
}

func (c *C) RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error) {
	args := c.Called(ctx, playerID, clanID)
	return args.Bool(0), args.Error(1)
}

func (c *C) MovePlayer(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error) {
	args := c.Called(ctx, playerID, fromClanID, toClanID)
	return args.Bool(0), args.Error(1)
}

func (c *C) MovePlayerInClan(ctx context.Context, playerID, clanID int32, position int) (bool, error) {
	args := c.Called(ctx, playerID, clanID, position)
	return args.Bool(0), args.Error(1)
}

func (c *C) SwapPlayers(ctx context.Context, clanID, playerID, otherPlayerID int32) error {
	args := c.Called(ctx, clanID, playerID, otherPlayerID)
	return args.Error(0)
}

func (c *C) GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error) {
	args := c.Called(ctx, listID)

	var r []model.ClanWithPlayers
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ClanWithPlayers)
	}
	return r, args.Error(1)
}

func (c *C) GenerateMessage(rosters []model.ClanWithPlayers) string {
	args := c.Called(rosters)
	return args.String(0)
}

func (c *C) ListCwlLists(ctx context.Context) ([]model.CwlList, error) {
	args := c.Called(ctx)

	var r []model.CwlList
	if args.Get(0) != nil {
		r = args.Get(0).([]model.CwlList)
	}
	return r, args.Error(1)
}

func (c *C) GetCwlList(ctx context.Context, id int32) (*model.CwlList, error) {
	args := c.Called(ctx, id)

	var l *model.CwlList
	if args.Get(0) != nil {
		l = args.Get(0).(*model.CwlList)
	}
	return l, args.Error(1)
}

func (c *C) CreateCwlList(ctx context.Context, name string) (*model.CwlList, error) {
	args := c.Called(ctx, name)

	var l *model.CwlList
	if args.Get(0) != nil {
		l = args.Get(0).(*model.CwlList)
	}
	return l, args.Error(1)
}

func (c *C) DeleteCwlList(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetPlayerStats(ctx context.Context) (*model.PlayerStats, error) {
	args := c.Called(ctx)

	var s *model.PlayerStats
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PlayerStats)
	}
	return s, args.Error(1)
}

func (c *C) LookupClanMembers(ctx context.Context, clanTag string) ([]model.ClashPlayer, error) {
	args := c.Called(ctx, clanTag)

	var r []model.ClashPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ClashPlayer)
	}
	return r, args.Error(1)
}
