package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/battiatomatteo/ClanWarMaker-static/clash"
	"github.com/battiatomatteo/ClanWarMaker-static/controller"
	"github.com/battiatomatteo/ClanWarMaker-static/controller/mockcontroller"
	"github.com/battiatomatteo/ClanWarMaker-static/db"
	"github.com/battiatomatteo/ClanWarMaker-static/model"
	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"
)

func serveRequest(ctrl controller.C, method, target, body string) *httptest.ResponseRecorder {
	router := getRouter(ctrl, render.New())

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRegisterPlayerHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RegisterPlayer", mock.Anything, "Anna", 15).
		Return(&model.Player{ID: 1, Name: "Anna", Townhall: 15}, nil)

	rr := serveRequest(ctrl, http.MethodPost, "/api/players/", `{"name":"Anna","townhall":15}`)

	if rr.Code != http.StatusCreated {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"name":"Anna"`) {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
	ctrl.AssertExpectations(t)
}

func TestRegisterPlayerHandler_townhallTooLow(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RegisterPlayer", mock.Anything, "Anna", 3).
		Return(nil, controller.ErrTownhallTooLow)

	rr := serveRequest(ctrl, http.MethodPost, "/api/players/", `{"name":"Anna","townhall":3}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), controller.ErrTownhallTooLow.Error()) {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
}

func TestRegisterPlayerHandler_badJSON(t *testing.T) {
	ctrl := &mockcontroller.C{}

	rr := serveRequest(ctrl, http.MethodPost, "/api/players/", `{"name":`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestDeletePlayerHandler_notFound(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("DeletePlayer", mock.Anything, int32(42)).Return(db.ErrPlayerNotFound)

	rr := serveRequest(ctrl, http.MethodDelete, "/api/players/42", "")

	if rr.Code != http.StatusNotFound {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestAddClanHandler_badCapacity(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("AddClan", mock.Anything, "Tigri Nere", 20, "Crystal I").
		Return(nil, &controller.ValidationError{Reason: "20 is not an allowed war size"})

	rr := serveRequest(ctrl, http.MethodPost, "/api/clans/", `{"name":"Tigri Nere","capacity":20,"league":"Crystal I"}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "not an allowed war size") {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
}

func TestAddClanHandler_badLeague(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("AddClan", mock.Anything, "Tigri Nere", 15, "Diamond I").
		Return(nil, &controller.ValidationError{Reason: `"Diamond I" is not a valid league`})

	rr := serveRequest(ctrl, http.MethodPost, "/api/clans/", `{"name":"Tigri Nere","capacity":15,"league":"Diamond I"}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestSwapPlayersHandler_unassigned(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SwapPlayers", mock.Anything, int32(3), int32(1), int32(9)).
		Return(&controller.ValidationError{Reason: "players 1 and 9 are not both assigned to clan 3"})

	rr := serveRequest(ctrl, http.MethodPost, "/api/swap-players", `{"clanId":3,"playerId":1,"otherPlayerId":9}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestCreateCwlListHandler_emptyName(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("CreateCwlList", mock.Anything, "").
		Return(nil, &controller.ValidationError{Reason: "list name is required"})

	rr := serveRequest(ctrl, http.MethodPost, "/api/cwl-lists/", `{"name":""}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestStatsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetPlayerStats", mock.Anything).
		Return(&model.PlayerStats{TotalPlayers: 12, TodayRegistrations: 3, AvgTownhall: 13.7}, nil)

	rr := serveRequest(ctrl, http.MethodGet, "/api/stats", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", rr.Code)
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if stats.TotalPlayers != 12 || stats.TodayRegistrations != 3 || stats.AvgTownhall != 13.7 {
		t.Errorf("stats not as expected: %+v", stats)
	}
}

func TestAssignPlayerHandler_conflict(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("AssignPlayer", mock.Anything, int32(1), int32(2), 0, int32(0)).
		Return(nil, db.ErrAssignmentConflict)

	rr := serveRequest(ctrl, http.MethodPost, "/api/assign-player", `{"playerId":1,"clanId":2,"position":0}`)

	if rr.Code != http.StatusConflict {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestSwapPlayersHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SwapPlayers", mock.Anything, int32(3), int32(1), int32(2)).Return(nil)

	rr := serveRequest(ctrl, http.MethodPost, "/api/swap-players", `{"clanId":3,"playerId":1,"otherPlayerId":2}`)

	if rr.Code != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
	ctrl.AssertExpectations(t)
}

func TestGenerateMessageHandler(t *testing.T) {
	rosters := []model.ClanWithPlayers{
		{Clan: model.Clan{ID: 1, Name: "Tigri Nere", Capacity: 15, League: model.LEAGUE_CRYSTAL_1}},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("GetClansWithPlayers", mock.Anything, int32(4)).Return(rosters, nil)
	ctrl.On("GenerateMessage", rosters).Return("Crystal I message")

	rr := serveRequest(ctrl, http.MethodPost, "/api/generate-cwl-message?listId=4", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Crystal I message") {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
	ctrl.AssertExpectations(t)
}

func TestGenerateMessageHandler_badListID(t *testing.T) {
	ctrl := &mockcontroller.C{}

	rr := serveRequest(ctrl, http.MethodPost, "/api/generate-cwl-message?listId=abc", "")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestClashPlayersHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("LookupClanMembers", mock.Anything, "2PPCWL").
		Return([]model.ClashPlayer{{Name: "Drago Rosso", Tag: "#L2GQJ9RV", Townhall: 15}}, nil)

	rr := serveRequest(ctrl, http.MethodGet, "/api/clash-players/2PPCWL", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Drago Rosso") {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
}

func TestClashPlayersHandler_badKey(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("LookupClanMembers", mock.Anything, "2PPCWL").
		Return(nil, clash.ErrInvalidAPIKey)

	rr := serveRequest(ctrl, http.MethodGet, "/api/clash-players/2PPCWL", "")

	if rr.Code != http.StatusForbidden {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}

func TestExportPlayersCSVHandler(t *testing.T) {
	csv := "ID,Nome Player,Town Hall,Data Registrazione\n1,Anna,15,2024-08-12 10:00:00\n"
	ctrl := &mockcontroller.C{}
	ctrl.On("PlayersCSV", mock.Anything).Return([]byte(csv), nil)

	rr := serveRequest(ctrl, http.MethodGet, "/api/export/players", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("unexpected content type: %s", got)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "players_cwl.csv") {
		t.Errorf("unexpected content disposition: %s", got)
	}
	if rr.Body.String() != csv {
		t.Errorf("response body not as expected: %s", rr.Body.String())
	}
}

func TestExportPDFHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}

	rr := serveRequest(ctrl, http.MethodPost, "/api/export-pdf", `{"message":"Crystal I\n\nTigri Nere - 15 partecipanti\n"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("unexpected content type: %s", got)
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF") {
		t.Errorf("expected a pdf document, got: %.20s", rr.Body.String())
	}
}

func TestExportPDFHandler_emptyMessage(t *testing.T) {
	ctrl := &mockcontroller.C{}

	rr := serveRequest(ctrl, http.MethodPost, "/api/export-pdf", `{"message":""}`)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", rr.Code)
	}
}
