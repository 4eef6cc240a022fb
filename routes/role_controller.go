package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/httpx"
	"github.com/mwalls/impactboard/log"
	"github.com/mwalls/impactboard/model"
)

func DefineRole(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := model.Role{}
		err := render.DecodeJSON(r.Body, &role)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if role.Name == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.role", "missing role name")
			return
		}

		role, err = app.DefineRole(r.Context(), role)
		if err != nil {
			httpx.DomainError(w, r, "db.insert_role", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, role)
	}
}

func ListRoles(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := app.ListRoles(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_roles", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"roles": roles,
		})
	}
}

func GetRole(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := app.GetRole(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_role", err)
			return
		}

		render.JSON(w, r, role)
	}
}

// UpdateRole replaces a role's field list. The name in the URL wins
// over any name in the body: roles cannot be renamed.
func UpdateRole(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := model.Role{}
		err := render.DecodeJSON(r.Body, &role)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		role.Name = chi.URLParam(r, "name")

		role, err = app.UpdateRole(r.Context(), role)
		if err != nil {
			httpx.DomainError(w, r, "db.update_role", err)
			return
		}

		render.JSON(w, r, role)
	}
}
