package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/battiatomatteo/ClanWarMaker-static/db/mockdb"
	"github.com/battiatomatteo/ClanWarMaker-static/model"
)

func TestDistributePlayers(t *testing.T) {
	ctrl := &controller{}

	players := []model.Player{
		{ID: 1, Name: "Anna", Townhall: 15},
		{ID: 2, Name: "Bruno", Townhall: 14},
		{ID: 3, Name: "Carla", Townhall: 13},
		{ID: 4, Name: "Dario", Townhall: 12},
		{ID: 5, Name: "Elisa", Townhall: 15},
	}
	clans := []model.Clan{
		{ID: 10, Name: "Tigri Nere", Capacity: 15, League: model.LEAGUE_CRYSTAL_1},
		{ID: 20, Name: "Lupi Grigi", Capacity: 15, League: model.LEAGUE_GOLD_2},
	}

	rosters, err := ctrl.DistributePlayers(players, clans)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(rosters))
	}

	// Round-robin: odd-indexed players land in the first clan, even in the second.
	wantFirst := []int32{1, 3, 5}
	wantSecond := []int32{2, 4}

	first := rosters[0].Players
	if len(first) != len(wantFirst) {
		t.Fatalf("expected %d players in first roster, got %d", len(wantFirst), len(first))
	}
	for i, id := range wantFirst {
		if first[i].ID != id {
			t.Errorf("first roster [%d] - expected player %d, got %d", i, id, first[i].ID)
		}
		if first[i].Position != i {
			t.Errorf("first roster [%d] - expected position %d, got %d", i, i, first[i].Position)
		}
	}

	second := rosters[1].Players
	if len(second) != len(wantSecond) {
		t.Fatalf("expected %d players in second roster, got %d", len(wantSecond), len(second))
	}
	for i, id := range wantSecond {
		if second[i].ID != id {
			t.Errorf("second roster [%d] - expected player %d, got %d", i, id, second[i].ID)
		}
		if second[i].Position != i {
			t.Errorf("second roster [%d] - expected position %d, got %d", i, i, second[i].Position)
		}
	}
}

func TestDistributePlayers_balance(t *testing.T) {
	ctrl := &controller{}

	tests := []struct {
		players int
		clans   int
		want    []int
	}{
		{players: 7, clans: 3, want: []int{3, 2, 2}},
		{players: 30, clans: 2, want: []int{15, 15}},
		{players: 0, clans: 2, want: []int{0, 0}},
		{players: 1, clans: 3, want: []int{1, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dp-%dc", tc.players, tc.clans), func(t *testing.T) {
			players := make([]model.Player, tc.players)
			for i := range players {
				players[i] = model.Player{ID: int32(i + 1), Name: fmt.Sprintf("p%d", i+1), Townhall: 13}
			}
			clans := make([]model.Clan, tc.clans)
			for i := range clans {
				clans[i] = model.Clan{ID: int32(i + 1), Name: fmt.Sprintf("c%d", i+1), Capacity: 15}
			}

			rosters, err := ctrl.DistributePlayers(players, clans)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, r := range rosters {
				if len(r.Players) != tc.want[i] {
					t.Errorf("roster %d - expected %d players, got %d", i, tc.want[i], len(r.Players))
				}
				for pos, p := range r.Players {
					if p.Position != pos {
						t.Errorf("roster %d - positions not contiguous at %d", i, pos)
					}
				}
			}
		})
	}
}

func TestDistributePlayers_noClans(t *testing.T) {
	ctrl := &controller{}

	rosters, err := ctrl.DistributePlayers([]model.Player{{ID: 1, Name: "Anna"}}, nil)
	if !errors.Is(err, ErrNoClansConfigured) {
		t.Errorf("expected ErrNoClansConfigured, got: %v", err)
	}
	if rosters != nil {
		t.Errorf("expected rosters to be nil")
	}
}

func TestAutoDistribute(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	ctrl := newTestController(t)

	for i := 0; i < 5; i++ {
		registerTestPlayer(t, ctrl, fmt.Sprintf("Player %d", i+1), 12+i%4)
	}
	addTestClan(t, ctrl, "Tigri Nere", 15, "Crystal I")
	addTestClan(t, ctrl, "Lupi Grigi", 15, "Gold II")

	rosters, err := ctrl.AutoDistribute(ctx)
	if err != nil {
		t.Fatalf("error distributing players: %v", err)
	}
	if len(rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(rosters))
	}
	if len(rosters[0].Players) != 3 || len(rosters[1].Players) != 2 {
		t.Fatalf("unbalanced rosters: %d and %d", len(rosters[0].Players), len(rosters[1].Players))
	}

	// The distribution must also be persisted.
	saved, err := ctrl.GetClansWithPlayers(ctx, 0)
	if err != nil {
		t.Fatalf("error reading saved rosters: %v", err)
	}
	total := 0
	for _, r := range saved {
		for pos, p := range r.Players {
			if p.Position != pos {
				t.Errorf("clan %d - positions not contiguous at %d", r.ID, pos)
			}
		}
		total += len(r.Players)
	}
	if total != 5 {
		t.Errorf("expected 5 saved assignments, got %d", total)
	}
}

func TestMovePlayer_sameClan(t *testing.T) {
	// Moving a player onto its own clan is a no-op and never touches the store.
	db := &mockdb.DB{}
	ctrl := &controller{db: db}

	moved, err := ctrl.MovePlayer(context.Background(), 1, 7, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved {
		t.Errorf("expected moved to be false")
	}
	db.AssertExpectations(t)
}

func TestSwapPlayers(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	ctrl := newTestController(t)

	p1 := registerTestPlayer(t, ctrl, "Anna", 15)
	p2 := registerTestPlayer(t, ctrl, "Bruno", 14)
	p3 := registerTestPlayer(t, ctrl, "Carla", 13)
	clan := addTestClan(t, ctrl, "Tigri Nere", 15, "Crystal I")

	for i, p := range []*model.Player{p1, p2, p3} {
		if _, err := ctrl.AssignPlayer(ctx, p.ID, clan.ID, i, 0); err != nil {
			t.Fatalf("error assigning player: %v", err)
		}
	}

	if err := ctrl.SwapPlayers(ctx, clan.ID, p1.ID, p3.ID); err != nil {
		t.Fatalf("error swapping players: %v", err)
	}

	rosters, err := ctrl.GetClansWithPlayers(ctx, 0)
	if err != nil {
		t.Fatalf("error reading rosters: %v", err)
	}
	roster := rosterOf(t, rosters, clan.ID)
	if len(roster) != 3 {
		t.Fatalf("expected 3 players, got %d", len(roster))
	}

	// Only the two swapped rows change, ordered by position the roster is
	// now Carla, Bruno, Anna.
	wantOrder := []int32{p3.ID, p2.ID, p1.ID}
	for i, id := range wantOrder {
		if roster[i].ID != id {
			t.Errorf("roster[%d] - expected player %d, got %d", i, id, roster[i].ID)
		}
		if roster[i].Position != i {
			t.Errorf("roster[%d] - expected position %d, got %d", i, i, roster[i].Position)
		}
	}

	// Swapping with a player outside the clan is the caller's mistake.
	outsider := registerTestPlayer(t, ctrl, "Dario", 12)
	err = ctrl.SwapPlayers(ctx, clan.ID, p1.ID, outsider.ID)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected a validation error swapping with an unassigned player, got: %v", err)
	}
}

func TestAssignPlayer_negativePosition(t *testing.T) {
	ctrl := &controller{}

	var vErr *ValidationError
	if _, err := ctrl.AssignPlayer(context.Background(), 1, 1, -1, 0); !errors.As(err, &vErr) {
		t.Errorf("expected a validation error for a negative position, got: %v", err)
	}
	if _, err := ctrl.MovePlayerInClan(context.Background(), 1, 1, -1); !errors.As(err, &vErr) {
		t.Errorf("expected a validation error for a negative position, got: %v", err)
	}
}
