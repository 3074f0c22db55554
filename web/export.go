package web

import (
	"encoding/json"
	"net/http"

	"github.com/battiatomatteo/ClanWarMaker-static/controller"
	"github.com/go-pdf/fpdf"
	"github.com/unrolled/render"
)

func exportPlayersCSVHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		csv, err := ctrl.PlayersCSV(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="players_cwl.csv"`)
		w.WriteHeader(http.StatusOK)
		w.Write(csv)
	}
}

func exportPDFHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderBadRequest(render, w, err)
			return
		}
		if req.Message == "" {
			render.JSON(w, http.StatusBadRequest, map[string]any{"message": "message is required"})
			return
		}

		pdf := messagePDF(req.Message)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="cwl-message.pdf"`)
		if err := pdf.Output(w); err != nil {
			renderError(render, w, err)
		}
	}
}

// messagePDF lays out the roster message as a simple single-font document
// with a centered title.
func messagePDF(message string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Messaggio CWL", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, message, "", "L", false)

	return pdf
}
