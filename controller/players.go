package controller

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

var (
	ErrNameRequired   = errors.New("player name is required")
	ErrTownhallTooLow = fmt.Errorf("townhall %d or higher is required", model.MinTownhall)
)

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.GetPlayers(ctx)
}

func (c *controller) RegisterPlayer(ctx context.Context, name string, townhall int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if townhall < model.MinTownhall {
		return nil, ErrTownhallTooLow
	}

	p := &model.Player{
		Name:     name,
		Townhall: townhall,
	}
	if err := c.db.AddPlayer(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) DeletePlayer(ctx context.Context, id int32) error {
	return c.db.DeletePlayer(ctx, id)
}

func (c *controller) ClearPlayers(ctx context.Context) (int, error) {
	return c.db.ClearPlayers(ctx)
}

func (c *controller) PlayersCSV(ctx context.Context) ([]byte, error) {
	players, err := c.db.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"ID", "Nome Player", "Town Hall", "Data Registrazione"}); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}
	for _, p := range players {
		record := []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			fmt.Sprintf("%d", p.Townhall),
			p.Created.Format(time.DateTime),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing csv row for player %d: %w", p.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing players csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *controller) GetAllContent(ctx context.Context) ([]model.Content, error) {
	return c.db.GetAllContent(ctx)
}

func (c *controller) UpdateContent(ctx context.Context, key, value string) (*model.Content, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, validationErrorf("content key is required")
	}
	return c.db.UpsertContent(ctx, key, value)
}
