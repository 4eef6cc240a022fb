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

func CreateProject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := model.Project{}
		err := render.DecodeJSON(r.Body, &project)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if project.Name == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.project", "missing project name")
			return
		}

		project, err = app.CreateProject(r.Context(), project)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_project", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, project)
	}
}

func ListProjects(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := app.ListProjects(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_projects", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"projects": projects,
		})
	}
}

func GetProject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := app.GetProject(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_project", err)
			return
		}

		render.JSON(w, r, project)
	}
}

func UpdateProject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := model.Project{}
		err := render.DecodeJSON(r.Body, &project)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		project.ID = chi.URLParam(r, "id")

		err = app.UpdateProject(r.Context(), project)
		if err != nil {
			httpx.DomainError(w, r, "db.update_project", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteProject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.DeleteProject(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.delete_project", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
