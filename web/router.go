package web

import (
	"time"

	"github.com/battiatomatteo/ClanWarMaker-static/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", listPlayersHandler(ctrl, render))
			r.Post("/", registerPlayerHandler(ctrl, render))
			r.Delete("/", clearPlayersHandler(ctrl, render))
			r.Delete("/{playerID:\\d+}", deletePlayerHandler(ctrl, render))
		})

		r.Get("/content", listContentHandler(ctrl, render))
		r.Put("/content", updateContentHandler(ctrl, render))

		r.Get("/stats", statsHandler(ctrl, render))

		r.Route("/clans", func(r chi.Router) {
			r.Get("/", listClansHandler(ctrl, render))
			r.Post("/", addClanHandler(ctrl, render))
			r.Delete("/", clearClansHandler(ctrl, render))
			r.Delete("/{clanID:\\d+}", deleteClanHandler(ctrl, render))
		})

		r.Route("/cwl-lists", func(r chi.Router) {
			r.Get("/", listCwlListsHandler(ctrl, render))
			r.Post("/", createCwlListHandler(ctrl, render))
			r.Get("/{listID:\\d+}", getCwlListHandler(ctrl, render))
			r.Delete("/{listID:\\d+}", deleteCwlListHandler(ctrl, render))
		})

		r.Get("/clans-with-players", clansWithPlayersHandler(ctrl, render))
		r.Post("/assign-player", assignPlayerHandler(ctrl, render))
		r.Post("/remove-player", removePlayerHandler(ctrl, render))
		r.Post("/move-player", movePlayerHandler(ctrl, render))
		r.Post("/move-player-in-clan", movePlayerInClanHandler(ctrl, render))
		r.Post("/swap-players", swapPlayersHandler(ctrl, render))
		r.Post("/distribute", distributeHandler(ctrl, render))
		r.Post("/generate-cwl-message", generateMessageHandler(ctrl, render))

		r.Get("/export/players", exportPlayersCSVHandler(ctrl, render))
		r.Post("/export-pdf", exportPDFHandler(ctrl, render))

		r.Get("/clash-players/{clanTag}", clashPlayersHandler(ctrl, render))
	})

	return r
}
