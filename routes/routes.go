package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwalls/impactboard/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Route("/projects", func(r chi.Router) {
		r.Post("/", CreateProject(app))
		r.Get("/", ListProjects(app))
		r.Get("/{id}", GetProject(app))
		r.Put("/{id}", UpdateProject(app))
		r.Delete("/{id}", DeleteProject(app))
	})

	api.Route("/roles", func(r chi.Router) {
		r.Post("/", DefineRole(app))
		r.Get("/", ListRoles(app))
		r.Get("/{name}", GetRole(app))
		r.Put("/{name}", UpdateRole(app))

		r.Post("/{name}/stakeholders", AddStakeholder(app))
		r.Get("/{name}/stakeholders", ListStakeholders(app))
		r.Post("/{name}/import", ImportStakeholders(app))
	})

	api.Route("/forms", func(r chi.Router) {
		r.Post("/", CreateForm(app))
		r.Get("/", ListForms(app))
		r.Get("/{id}", GetForm(app))
		r.Put("/{id}", UpdateForm(app))
		r.Delete("/{id}", DeleteForm(app))
		r.Get("/{id}/share", ShareForm(app))
		r.Get("/{id}/responses", ListFormResponses(app))

		r.Post("/{id}/questions", AddQuestion(app))
		r.Patch("/{id}/questions/{qid}", UpdateQuestion(app))
		r.Delete("/{id}/questions/{qid}", RemoveQuestion(app))
		r.Post("/{id}/questions/{qid}/move", MoveQuestion(app))

		r.Post("/{id}/questions/{qid}/options", AddOption(app))
		r.Patch("/{id}/questions/{qid}/options/{oid}", UpdateOption(app))
		r.Delete("/{id}/questions/{qid}/options/{oid}", RemoveOption(app))
	})

	return api
}
