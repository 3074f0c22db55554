package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

// GenerateMessage renders the shareable CWL roster message. One block per
// clan in input order, players numbered from 1 following their stored
// positions, with a footer when the roster is under capacity. The output is
// a pure function of the input.
func (c *controller) GenerateMessage(rosters []model.ClanWithPlayers) string {
	var b strings.Builder

	for _, r := range rosters {
		fmt.Fprintf(&b, "%s\n\n", r.League)
		fmt.Fprintf(&b, "%s - %d partecipanti\n\n", r.Name, r.Capacity)

		for i, p := range r.Players {
			fmt.Fprintf(&b, "%d) %s - TH%d\n", i+1, p.Name, p.Townhall)
		}

		missing := r.Capacity - len(r.Players)
		if missing > 0 {
			fmt.Fprintf(&b, "\nMancano ancora %d player\n", missing)
		}

		b.WriteString("\n---\n\n")
	}

	return b.String()
}

func (c *controller) ListCwlLists(ctx context.Context) ([]model.CwlList, error) {
	return c.db.GetCwlLists(ctx)
}

func (c *controller) GetCwlList(ctx context.Context, id int32) (*model.CwlList, error) {
	return c.db.GetCwlList(ctx, id)
}

// CreateCwlList snapshots the current rosters under a name, storing the
// rendered message alongside it.
func (c *controller) CreateCwlList(ctx context.Context, name string) (*model.CwlList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("list name is required")
	}

	rosters, err := c.db.GetClansWithPlayers(ctx, 0)
	if err != nil {
		return nil, err
	}

	l := &model.CwlList{
		Name:    name,
		Message: c.GenerateMessage(rosters),
	}
	if err := c.db.AddCwlList(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) DeleteCwlList(ctx context.Context, id int32) error {
	return c.db.DeleteCwlList(ctx, id)
}
