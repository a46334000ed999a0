package datasets_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/datahub/internal/app/features/datasets"
	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	sysauth "github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/auditlog"
	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type env struct {
	router     chi.Router
	workspaces *workspacestore.Store
	datasets   *datasetstore.Store
	token      string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	userStore := userstore.New()
	tokenStore := tokenstore.New(time.Hour)
	wsStore := workspacestore.New()
	dsStore := datasetstore.New(wsStore)
	audit := auditlog.New(nil, zap.NewNop(), auditlog.Config{Auth: "off", Catalog: "off"})

	u, err := userStore.Create(context.Background(), models.User{
		Email:        "ada@example.com",
		FullName:     "Ada Lovelace",
		Role:         models.RoleUser,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	tok, err := tokenStore.Issue(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	h := datasets.NewHandler(wsStore, dsStore, audit, zap.NewNop())
	v := &sysauth.Verifier{Tokens: tokenStore, Users: userStore, Log: zap.NewNop()}

	router := chi.NewRouter()
	router.Mount("/workspaces/{id}/datasets", datasets.Routes(h, v))

	return &env{
		router:     router,
		workspaces: wsStore,
		datasets:   dsStore,
		token:      tok.Value,
	}
}

func (e *env) workspace(t *testing.T, name string) string {
	t.Helper()
	ws, err := e.workspaces.Create(context.Background(), models.Workspace{
		Name:       name,
		OwnerEmail: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	return ws.ID
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp.Error
}

func TestCreate_Success(t *testing.T) {
	e := newEnv(t)
	wsID := e.workspace(t, "analytics")

	rows := int64(1200)
	w := e.do(t, "POST", "/workspaces/"+wsID+"/datasets", map[string]any{
		"name":        "events",
		"data_schema": map[string]any{"ts": "timestamp", "user": "string"},
		"row_count":   rows,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID          string         `json:"id"`
		Name        string         `json:"name"`
		WorkspaceID string         `json:"workspace_id"`
		Schema      map[string]any `json:"data_schema"`
		RowCount    *int64         `json:"row_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != "events" || resp.WorkspaceID != wsID {
		t.Errorf("got name %q workspace %q", resp.Name, resp.WorkspaceID)
	}
	if resp.RowCount == nil || *resp.RowCount != rows {
		t.Errorf("got row_count %v, want %d", resp.RowCount, rows)
	}
	if resp.Schema["ts"] != "timestamp" {
		t.Errorf("got schema %v", resp.Schema)
	}
}

func TestCreate_UnknownWorkspace(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, "POST", "/workspaces/no-such-id/datasets", map[string]any{"name": "events"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if code := errCode(t, w); code != "workspace_not_found" {
		t.Errorf("got error %q, want workspace_not_found", code)
	}
}

func TestCreate_DuplicatePerWorkspaceOnly(t *testing.T) {
	e := newEnv(t)
	first := e.workspace(t, "analytics")
	second := e.workspace(t, "research")

	if w := e.do(t, "POST", "/workspaces/"+first+"/datasets", map[string]any{"name": "events"}); w.Code != http.StatusCreated {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}

	w := e.do(t, "POST", "/workspaces/"+first+"/datasets", map[string]any{"name": "events"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if code := errCode(t, w); code != "duplicate_name" {
		t.Errorf("got error %q, want duplicate_name", code)
	}

	// Same name in another workspace is allowed.
	if w := e.do(t, "POST", "/workspaces/"+second+"/datasets", map[string]any{"name": "events"}); w.Code != http.StatusCreated {
		t.Errorf("got status %d, want 201 for other workspace", w.Code)
	}
}

func TestCreate_NegativeRowCount(t *testing.T) {
	e := newEnv(t)
	wsID := e.workspace(t, "analytics")

	w := e.do(t, "POST", "/workspaces/"+wsID+"/datasets", map[string]any{
		"name":      "events",
		"row_count": -5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", w.Code)
	}
}

func TestList_Paging(t *testing.T) {
	e := newEnv(t)
	wsID := e.workspace(t, "analytics")

	for i := 0; i < 5; i++ {
		if _, err := e.datasets.Create(context.Background(), models.Dataset{
			Name:        fmt.Sprintf("ds-%d", i),
			WorkspaceID: wsID,
		}); err != nil {
			t.Fatalf("create dataset: %v", err)
		}
	}

	var resp struct {
		Datasets []struct {
			Name string `json:"name"`
		} `json:"datasets"`
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}

	w := e.do(t, "GET", "/workspaces/"+wsID+"/datasets?limit=2&offset=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Datasets) != 2 || resp.Datasets[0].Name != "ds-2" || resp.Datasets[1].Name != "ds-3" {
		t.Errorf("got page %v", resp.Datasets)
	}
	if resp.Total != 5 {
		t.Errorf("got total %d, want 5", resp.Total)
	}

	// Offset past the end is an empty page.
	w = e.do(t, "GET", "/workspaces/"+wsID+"/datasets?offset=100", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	resp.Datasets = nil
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Datasets) != 0 {
		t.Errorf("got %d datasets, want empty page", len(resp.Datasets))
	}
}

func TestList_DefaultLimit(t *testing.T) {
	e := newEnv(t)
	wsID := e.workspace(t, "analytics")

	for i := 0; i < 12; i++ {
		if _, err := e.datasets.Create(context.Background(), models.Dataset{
			Name:        fmt.Sprintf("ds-%02d", i),
			WorkspaceID: wsID,
		}); err != nil {
			t.Fatalf("create dataset: %v", err)
		}
	}

	w := e.do(t, "GET", "/workspaces/"+wsID+"/datasets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Datasets []json.RawMessage `json:"datasets"`
		Limit    int               `json:"limit"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Datasets) != 10 || resp.Limit != 10 {
		t.Errorf("got %d datasets with limit %d, want default page of 10", len(resp.Datasets), resp.Limit)
	}
}

func TestList_InvalidPagination(t *testing.T) {
	e := newEnv(t)
	wsID := e.workspace(t, "analytics")

	for _, q := range []string{"limit=-1", "offset=-1", "limit=101", "limit=ten"} {
		w := e.do(t, "GET", "/workspaces/"+wsID+"/datasets?"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got status %d, want 400", q, w.Code)
			continue
		}
		if code := errCode(t, w); code != "invalid_pagination" {
			t.Errorf("%s: got error %q, want invalid_pagination", q, code)
		}
	}
}

func TestList_InvalidPaginationBeatsMissingWorkspace(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, "GET", "/workspaces/no-such-id/datasets?limit=-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	if code := errCode(t, w); code != "invalid_pagination" {
		t.Errorf("got error %q, want invalid_pagination", code)
	}
}

func TestList_UnknownWorkspace(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, "GET", "/workspaces/no-such-id/datasets", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if code := errCode(t, w); code != "workspace_not_found" {
		t.Errorf("got error %q, want workspace_not_found", code)
	}
}
