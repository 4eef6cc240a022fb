package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/httpx"
	"github.com/mwalls/impactboard/log"
	"github.com/mwalls/impactboard/model"
)

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		if form.Title == "" {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "request.form", "missing form title")
			return
		}

		form, err = app.CreateForm(r.Context(), form)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, form)
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := app.ListForms(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := app.GetForm(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_form", err)
			return
		}

		render.JSON(w, r, form)
	}
}

func UpdateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		form.ID = chi.URLParam(r, "id")

		form, err = app.UpdateForm(r.Context(), form)
		if err != nil {
			httpx.DomainError(w, r, "db.update_form", err)
			return
		}

		render.JSON(w, r, form)
	}
}

func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.DeleteForm(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.delete_form", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ShareForm hands out the public link of a form. The host is
// illustrative; there is no live endpoint behind it.
func ShareForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := app.GetForm(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_form", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"link": "https://yourapp.com/forms/" + form.ID,
		})
	}
}

func ListFormResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses, err := app.ListResponses(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			httpx.DomainError(w, r, "db.get_responses", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"responses": responses,
		})
	}
}

func AddQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Type string `json:"type"`
		}{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil || body.Type == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		q, err := app.AddQuestion(r.Context(), chi.URLParam(r, "id"), body.Type)
		if err != nil {
			httpx.DomainError(w, r, "db.insert_question", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, q)
	}
}

func UpdateQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch := model.QuestionPatch{}
		err := render.DecodeJSON(r.Body, &patch)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		q, err := app.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"), patch)
		if err != nil {
			httpx.DomainError(w, r, "db.update_question", err)
			return
		}

		render.JSON(w, r, q)
	}
}

func RemoveQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.RemoveQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"))
		if err != nil {
			httpx.DomainError(w, r, "db.delete_question", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func MoveQuestion(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Target string `json:"target"`
		}{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil || body.Target == "" {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		form, err := app.MoveQuestion(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"), body.Target)
		if err != nil {
			httpx.DomainError(w, r, "db.move_question", err)
			return
		}

		render.JSON(w, r, form)
	}
}

func AddOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := struct {
			Value string `json:"value"`
		}{}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		q, err := app.AddOption(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"), body.Value)
		if err != nil {
			httpx.DomainError(w, r, "db.insert_option", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, q)
	}
}

func UpdateOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		optionID, err := strconv.Atoi(chi.URLParam(r, "oid"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.oid")
			return
		}

		body := struct {
			Value string `json:"value"`
		}{}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		q, err := app.UpdateOption(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"), optionID, body.Value)
		if err != nil {
			httpx.DomainError(w, r, "db.update_option", err)
			return
		}

		render.JSON(w, r, q)
	}
}

func RemoveOption(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		optionID, err := strconv.Atoi(chi.URLParam(r, "oid"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.oid")
			return
		}

		q, err := app.RemoveOption(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "qid"), optionID)
		if err != nil {
			httpx.DomainError(w, r, "db.delete_option", err)
			return
		}

		render.JSON(w, r, q)
	}
}
