package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalls/impactboard/app"
	"github.com/mwalls/impactboard/config"
	"github.com/mwalls/impactboard/database"
	"github.com/mwalls/impactboard/model"
	"github.com/mwalls/impactboard/store"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Config{DBUrl: filepath.Join(t.TempDir(), "test.sqlite")}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return Wire(app.App{Store: store.New(db), Config: cfg})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("content-type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func girlsPayload() model.Role {
	return model.Role{
		Name: "Girls",
		Fields: []model.Field{
			{Name: "Full Name", Type: "text", Required: true},
			{Name: "Age", Type: "number", Required: true},
		},
	}
}

func TestRoleEndpoints(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/roles", girlsPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles", model.Role{Name: "girls"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = doJSON(t, handler, "GET", "/api/roles/Girls", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	role := decode[model.Role](t, resp)
	assert.Len(t, role.Fields, 2)

	resp = doJSON(t, handler, "GET", "/api/roles/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, handler, "PUT", "/api/roles/Girls", model.Role{
		Fields: []model.Field{{Name: "Full Name", Type: "text", Required: true}},
	})
	require.Equal(t, http.StatusOK, resp.Code)
	role = decode[model.Role](t, resp)
	assert.Equal(t, "Girls", role.Name)
	assert.Len(t, role.Fields, 1)
}

func TestStakeholderEndpoints(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/roles", girlsPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles/Girls/stakeholders",
		map[string]string{"Full Name": "Sarah"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles/Girls/stakeholders",
		map[string]string{"Full Name": "Sarah", "Age": "15"})
	require.Equal(t, http.StatusCreated, resp.Code)
	rec := decode[model.Stakeholder](t, resp)
	assert.Equal(t, "GRL-001", rec.ID)

	resp = doJSON(t, handler, "GET", "/api/roles/Girls/stakeholders", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decode[map[string][]model.Stakeholder](t, resp)
	assert.Len(t, list["stakeholders"], 1)
}

func TestImportEndpoint(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/roles", girlsPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles/Girls/import", map[string]any{
		"csv": "Full Name,Age\nSarah,15\nMaria,\n",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	result := decode[struct {
		Imported []model.Stakeholder `json:"imported"`
		Errors   []struct {
			Row    int    `json:"row"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}](t, resp)

	require.Len(t, result.Imported, 1)
	assert.Equal(t, "GRL-001", result.Imported[0].ID)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Reason, "Age")
}

func TestImportEndpointEmptyFile(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/roles", girlsPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles/Girls/import", map[string]any{"csv": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestImportEndpointIncompleteMapping(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/roles", girlsPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, handler, "POST", "/api/roles/Girls/import", map[string]any{
		"csv": "name\nSarah\n",
		"mapping": []map[string]string{
			{"field": "Full Name", "column": "name"},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestFormEndpoints(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/forms", model.Form{
		Title:             "Intake",
		TargetStakeholder: "Girls",
		Questions: []model.FormQuestion{
			{Question: "one", Type: "text"},
			{Question: "two", Type: "text"},
			{Question: "three", Type: "text"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	form := decode[model.Form](t, resp)
	require.NotEmpty(t, form.ID)
	require.Len(t, form.Questions, 3)

	// add a radio question: seeded with Option 1
	resp = doJSON(t, handler, "POST", "/api/forms/"+form.ID+"/questions",
		map[string]string{"type": "radio"})
	require.Equal(t, http.StatusCreated, resp.Code)
	q := decode[model.FormQuestion](t, resp)
	assert.Equal(t, "q4", q.ID)
	assert.Equal(t, []model.QuestionOption{{ID: 1, Value: "Option 1"}}, q.Options)

	// move q3 onto q1
	resp = doJSON(t, handler, "POST", "/api/forms/"+form.ID+"/questions/q3/move",
		map[string]string{"target": "q1"})
	require.Equal(t, http.StatusOK, resp.Code)
	moved := decode[model.Form](t, resp)
	ids := []string{}
	for _, mq := range moved.Questions {
		ids = append(ids, mq.ID)
	}
	assert.Equal(t, []string{"q3", "q1", "q2", "q4"}, ids)

	// share link
	resp = doJSON(t, handler, "GET", "/api/forms/"+form.ID+"/share", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	share := decode[map[string]string](t, resp)
	assert.Equal(t, "https://yourapp.com/forms/"+form.ID, share["link"])

	// delete, then 404
	resp = doJSON(t, handler, "DELETE", "/api/forms/"+form.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = doJSON(t, handler, "DELETE", "/api/forms/"+form.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestProjectEndpoints(t *testing.T) {
	handler := testHandler(t)

	resp := doJSON(t, handler, "POST", "/api/projects", model.Project{
		Name:        "Tech Empowerment",
		Description: "Pilot cohort",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	project := decode[model.Project](t, resp)
	require.NotEmpty(t, project.ID)

	project.Description = "Second cohort"
	resp = doJSON(t, handler, "PUT", "/api/projects/"+project.ID, project)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, handler, "GET", "/api/projects/"+project.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Second cohort", decode[model.Project](t, resp).Description)

	resp = doJSON(t, handler, "DELETE", "/api/projects/"+project.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = doJSON(t, handler, "DELETE", "/api/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestResponsesEndpointOnSeededData(t *testing.T) {
	cfg := config.Config{DBUrl: filepath.Join(t.TempDir(), "test.sqlite")}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st := store.New(db)
	require.NoError(t, st.Seed(context.Background()))
	handler := Wire(app.App{Store: st, Config: cfg})

	resp := doJSON(t, handler, "GET", "/api/forms", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	forms := decode[map[string][]model.Form](t, resp)["forms"]
	require.Len(t, forms, 2)

	resp = doJSON(t, handler, "GET", "/api/forms/"+forms[0].ID+"/responses", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	responses := decode[map[string][]model.FormResponse](t, resp)["responses"]
	assert.Len(t, responses, 3)
}
