package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/battiatomatteo/ClanWarMaker-static/clash"
	"github.com/battiatomatteo/ClanWarMaker-static/controller"
	"github.com/battiatomatteo/ClanWarMaker-static/db"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func registerPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Townhall int    `json:"townhall"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		p, err := ctrl.RegisterPlayer(r.Context(), req.Name, req.Townhall)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, p)
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "playerID")
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.DeletePlayer(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"message": "player deleted"})
	}
}

func clearPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := ctrl.ClearPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"removed": n})
	}
}

func listContentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents, err := ctrl.GetAllContent(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, contents)
	}
}

func updateContentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		content, err := ctrl.UpdateContent(r.Context(), req.Key, req.Value)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, content)
	}
}

func statsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ctrl.GetPlayerStats(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func listClansHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clans, err := ctrl.ListClans(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, clans)
	}
}

func addClanHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Capacity int    `json:"capacity"`
			League   string `json:"league"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		clan, err := ctrl.AddClan(r.Context(), req.Name, req.Capacity, req.League)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, clan)
	}
}

func deleteClanHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "clanID")
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.DeleteClan(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"message": "clan deleted"})
	}
}

func clearClansHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := ctrl.ClearClans(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"removed": n})
	}
}

func listCwlListsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lists, err := ctrl.ListCwlLists(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, lists)
	}
}

func createCwlListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		l, err := ctrl.CreateCwlList(r.Context(), req.Name)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, l)
	}
}

func getCwlListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "listID")
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		l, err := ctrl.GetCwlList(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func deleteCwlListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamID(r, "listID")
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.DeleteCwlList(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"message": "list deleted"})
	}
}

func clansWithPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, err := queryListID(r)
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		rosters, err := ctrl.GetClansWithPlayers(r.Context(), listID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, rosters)
	}
}

func assignPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID int32 `json:"playerId"`
			ClanID   int32 `json:"clanId"`
			Position int   `json:"position"`
			ListID   int32 `json:"listId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		a, err := ctrl.AssignPlayer(r.Context(), req.PlayerID, req.ClanID, req.Position, req.ListID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, a)
	}
}

func removePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID int32 `json:"playerId"`
			ClanID   int32 `json:"clanId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		removed, err := ctrl.RemovePlayerFromClan(r.Context(), req.PlayerID, req.ClanID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": removed})
	}
}

func movePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID   int32 `json:"playerId"`
			FromClanID int32 `json:"fromClanId"`
			ToClanID   int32 `json:"toClanId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		moved, err := ctrl.MovePlayer(r.Context(), req.PlayerID, req.FromClanID, req.ToClanID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": moved})
	}
}

func movePlayerInClanHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID int32 `json:"playerId"`
			ClanID   int32 `json:"clanId"`
			Position int   `json:"position"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		moved, err := ctrl.MovePlayerInClan(r.Context(), req.PlayerID, req.ClanID, req.Position)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": moved})
	}
}

func swapPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ClanID        int32 `json:"clanId"`
			PlayerID      int32 `json:"playerId"`
			OtherPlayerID int32 `json:"otherPlayerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}

		if err := ctrl.SwapPlayers(r.Context(), req.ClanID, req.PlayerID, req.OtherPlayerID); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func distributeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rosters, err := ctrl.AutoDistribute(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, rosters)
	}
}

func generateMessageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, err := queryListID(r)
		if err != nil {
			renderBadRequest(render, w, err)
			return
		}

		rosters, err := ctrl.GetClansWithPlayers(r.Context(), listID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"message": ctrl.GenerateMessage(rosters)})
	}
}

func clashPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clanTag := chi.URLParam(r, "clanTag")

		players, err := ctrl.LookupClanMembers(r.Context(), clanTag)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func urlParamID(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func queryListID(r *http.Request) (int32, error) {
	q := r.URL.Query().Get("listId")
	if q == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(q)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func renderBadRequest(render *render.Render, w http.ResponseWriter, err error) {
	render.JSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
}

// renderError maps domain errors onto HTTP status codes. Anything not
// recognized is a storage or upstream failure and becomes a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var validationErr *controller.ValidationError
	switch {
	case errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrClanNotFound),
		errors.Is(err, db.ErrListNotFound),
		errors.Is(err, db.ErrContentNotFound),
		errors.Is(err, clash.ErrClanNotFound):
		status = http.StatusNotFound
	case errors.As(err, &validationErr),
		errors.Is(err, controller.ErrNameRequired),
		errors.Is(err, controller.ErrTownhallTooLow),
		errors.Is(err, controller.ErrClanNameRequired),
		errors.Is(err, controller.ErrNoClansConfigured),
		errors.Is(err, clash.ErrMissingClanTag):
		status = http.StatusBadRequest
	case errors.Is(err, clash.ErrInvalidAPIKey):
		status = http.StatusForbidden
	case errors.Is(err, db.ErrAssignmentConflict):
		status = http.StatusConflict
	}
	render.JSON(w, status, map[string]any{"message": err.Error()})
}
