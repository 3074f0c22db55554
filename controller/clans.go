package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

var ErrClanNameRequired = errors.New("clan name is required")

func (c *controller) ListClans(ctx context.Context) ([]model.Clan, error) {
	return c.db.GetClans(ctx)
}

func (c *controller) AddClan(ctx context.Context, name string, capacity int, league string) (*model.Clan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClanNameRequired
	}
	if !model.IsAllowedCapacity(capacity) {
		return nil, validationErrorf("%d is not an allowed war size", capacity)
	}
	l := model.ParseLeague(league)
	if l == model.LEAGUE_UNKNOWN {
		return nil, validationErrorf("%q is not a valid league", league)
	}

	clan := &model.Clan{
		Name:     name,
		Capacity: capacity,
		League:   l,
	}
	if err := c.db.AddClan(ctx, clan); err != nil {
		return nil, err
	}
	return clan, nil
}

func (c *controller) DeleteClan(ctx context.Context, id int32) error {
	return c.db.DeleteClan(ctx, id)
}

func (c *controller) ClearClans(ctx context.Context) (int, error) {
	return c.db.ClearClans(ctx)
}
