package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/httpx"
	"github.com/mwalls/impactboard/log"
)

func AddStakeholder(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{}
		err := render.DecodeJSON(r.Body, &data)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		rec, err := app.AddRecord(r.Context(), chi.URLParam(r, "name"), data)
		if err != nil {
			httpx.DomainError(w, r, "db.insert_stakeholder", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, rec)
	}
}

func ListStakeholders(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := app.ListRecords(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_stakeholders", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"stakeholders": records,
		})
	}
}
