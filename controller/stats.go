package controller

import (
	"context"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

func (c *controller) GetPlayerStats(ctx context.Context) (*model.PlayerStats, error) {
	return c.db.GetPlayerStats(ctx)
}

func (c *controller) LookupClanMembers(ctx context.Context, clanTag string) ([]model.ClashPlayer, error) {
	return c.clash.ClanMembers(ctx, clanTag)
}
