package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mwalls/impactboard/log"
	"github.com/mwalls/impactboard/model"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}

// DomainError translates a typed domain error into an HTTP response
// with a JSON error body: 409 for duplicates, 404 for missing entities,
// 422 for validation failures. Anything unrecognized is treated as an
// internal error.
func DomainError(w http.ResponseWriter, r *http.Request, code string, err error) {
	status := domainStatus(err)
	if status == http.StatusInternalServerError {
		LogInternalError(w, code, err)
		return
	}

	log.Debugf("%s: %s", code, err)
	w.WriteHeader(status)
	render.JSON(w, r, map[string]any{
		"error": err.Error(),
	})
}

func domainStatus(err error) int {
	switch {
	case errors.As(err, &model.DuplicateRoleError{}):
		return http.StatusConflict
	case errors.As(err, &model.RoleNotFoundError{}),
		errors.As(err, &model.FormNotFoundError{}),
		errors.As(err, &model.QuestionNotFoundError{}),
		errors.As(err, &model.OptionNotFoundError{}),
		errors.As(err, &model.ProjectNotFoundError{}):
		return http.StatusNotFound
	case errors.As(err, &model.DuplicateFieldError{}),
		errors.As(err, &model.MissingRequiredFieldError{}),
		errors.As(err, &model.EmptyImportFileError{}):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
