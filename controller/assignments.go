package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

var ErrNoClansConfigured = errors.New("no clans configured")

// DistributePlayers spreads the players over the clans round-robin: player i
// goes to clan i mod len(clans). Positions restart from 0 in every roster
// and grow in the order players land there.
func (c *controller) DistributePlayers(players []model.Player, clans []model.Clan) ([]model.ClanWithPlayers, error) {
	if len(clans) == 0 {
		return nil, ErrNoClansConfigured
	}

	rosters := make([]model.ClanWithPlayers, len(clans))
	for i, clan := range clans {
		rosters[i] = model.ClanWithPlayers{
			Clan:    clan,
			Players: make([]model.AssignedPlayer, 0, clan.Capacity),
		}
	}

	for i, p := range players {
		r := &rosters[i%len(clans)]
		r.Players = append(r.Players, model.AssignedPlayer{
			Player:   p,
			Position: len(r.Players),
		})
	}

	return rosters, nil
}

func (c *controller) SaveDistribution(ctx context.Context, rosters []model.ClanWithPlayers, listID int32) error {
	for _, r := range rosters {
		for _, p := range r.Players {
			if _, err := c.db.AssignPlayerToClan(ctx, p.ID, r.ID, p.Position, listID); err != nil {
				return fmt.Errorf("error saving assignment of player %d to clan %d: %w", p.ID, r.ID, err)
			}
		}
	}
	return nil
}

func (c *controller) AutoDistribute(ctx context.Context) ([]model.ClanWithPlayers, error) {
	players, err := c.db.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	clans, err := c.db.GetClans(ctx)
	if err != nil {
		return nil, err
	}

	rosters, err := c.DistributePlayers(players, clans)
	if err != nil {
		return nil, err
	}

	if err := c.SaveDistribution(ctx, rosters, 0); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *controller) AssignPlayer(ctx context.Context, playerID, clanID int32, position int, listID int32) (*model.PlayerAssignment, error) {
	if position < 0 {
		return nil, validationErrorf("%d is not a valid roster position", position)
	}
	return c.db.AssignPlayerToClan(ctx, playerID, clanID, position, listID)
}

func (c *controller) RemovePlayerFromClan(ctx context.Context, playerID, clanID int32) (bool, error) {
	return c.db.RemovePlayerFromClan(ctx, playerID, clanID)
}

func (c *controller) MovePlayer(ctx context.Context, playerID, fromClanID, toClanID int32) (bool, error) {
	if fromClanID == toClanID {
		return false, nil
	}
	return c.db.MovePlayerBetweenClans(ctx, playerID, fromClanID, toClanID)
}

func (c *controller) MovePlayerInClan(ctx context.Context, playerID, clanID int32, position int) (bool, error) {
	if position < 0 {
		return false, validationErrorf("%d is not a valid roster position", position)
	}
	return c.db.SetPlayerPosition(ctx, playerID, clanID, position)
}

// SwapPlayers exchanges the positions of two players inside a clan. Only the
// two rows change, matching the admin UI's adjacent-swap reorder.
func (c *controller) SwapPlayers(ctx context.Context, clanID, playerID, otherPlayerID int32) error {
	rosters, err := c.db.GetClansWithPlayers(ctx, 0)
	if err != nil {
		return err
	}

	posA, posB := -1, -1
	for _, r := range rosters {
		if r.ID != clanID {
			continue
		}
		for _, p := range r.Players {
			switch p.ID {
			case playerID:
				posA = p.Position
			case otherPlayerID:
				posB = p.Position
			}
		}
	}
	if posA == -1 || posB == -1 {
		return validationErrorf("players %d and %d are not both assigned to clan %d", playerID, otherPlayerID, clanID)
	}

	if _, err := c.db.SetPlayerPosition(ctx, playerID, clanID, posB); err != nil {
		return err
	}
	if _, err := c.db.SetPlayerPosition(ctx, otherPlayerID, clanID, posA); err != nil {
		return err
	}
	return nil
}

func (c *controller) GetClansWithPlayers(ctx context.Context, listID int32) ([]model.ClanWithPlayers, error) {
	return c.db.GetClansWithPlayers(ctx, listID)
}
