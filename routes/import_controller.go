package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/httpx"
	"github.com/mwalls/impactboard/importer"
	"github.com/mwalls/impactboard/log"
	"github.com/mwalls/impactboard/model"
)

type importRequest struct {
	Csv     string                  `json:"csv"`
	Mapping []importer.FieldMapping `json:"mapping"`
}

type importResult struct {
	Imported []model.Stakeholder `json:"imported"`
	Errors   []importer.RowError `json:"errors"`
}

// ImportStakeholders runs a bulk CSV import for one role. Rows that
// pass validation become stakeholder records; rows that fail come back
// in a per-row error report alongside the imported ones. When no
// mapping is supplied, columns are matched to identically named fields.
func ImportStakeholders(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := importRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		role, err := app.GetRole(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_role", err)
			return
		}

		columns, err := importer.ParseHeader(req.Csv)
		if err != nil {
			httpx.DomainError(w, r, "import.parse_header", err)
			return
		}

		mapping := req.Mapping
		if len(mapping) == 0 {
			mapping = importer.BuildMapping(role)
			for _, column := range columns {
				mapping = importer.SetMapping(mapping, column, column)
			}
		}
		if !importer.IsMappingComplete(mapping, role) {
			httpx.LogStatusMsg(w, http.StatusUnprocessableEntity, log.DebugLevel,
				"import.mapping", "mapping does not cover all required fields")
			return
		}

		report := importer.Run(role, columns, mapping, importer.ParseRows(req.Csv))

		result := importResult{
			Imported: []model.Stakeholder{},
			Errors:   report.Errors,
		}
		for _, data := range report.Valid {
			rec, err := app.AddRecord(r.Context(), role.Name, data)
			if err != nil {
				httpx.DomainError(w, r, "db.insert_stakeholder", err)
				return
			}
			result.Imported = append(result.Imported, rec)
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, result)
	}
}
