package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
)

const fixture = `
role: AXApplication
roledescription: application
title: Demo
children:
  - role: AXWindow
    roledescription: standard window
    title: Main
  - role: AXMenuBar
    roledescription: menu bar
`

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	app, err := ax.ParseFixture([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseFixture failed: %v", err)
	}
	store := snapshot.NewStore(model.NewSettings())
	if err := store.LoadApplicationRoot(app); err != nil {
		t.Fatalf("LoadApplicationRoot failed: %v", err)
	}
	return Handler(store, app)
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", url, nil))
	return rec
}

func TestTreeEndpoint(t *testing.T) {
	rec := get(t, testHandler(t), "/api/tree")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var tree elementJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &tree); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if tree.Role != ax.RoleApplication || len(tree.Children) != 2 {
		t.Errorf("tree = %+v", tree)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	rec := get(t, testHandler(t), "/api/snapshot")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Levels      [][]nodeJSON `json:"levels"`
		CurrentPath string       `json:"currentPath"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(body.Levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(body.Levels))
	}
	if body.CurrentPath != "0" {
		t.Errorf("currentPath = %q, want 0", body.CurrentPath)
	}
	if !body.Levels[0][0].Selected {
		t.Error("root node should be marked selected")
	}
}

func TestNodeEndpoint(t *testing.T) {
	h := testHandler(t)

	rec := get(t, h, "/api/node?path=0.1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var n nodeJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if n.Brief != "menu bar" {
		t.Errorf("brief = %q, want menu bar", n.Brief)
	}

	if rec := get(t, h, "/api/node?path=9.9"); rec.Code != http.StatusNotFound {
		t.Errorf("missing node status = %d, want 404", rec.Code)
	}
	if rec := get(t, h, "/api/node?path=bogus"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad path status = %d, want 400", rec.Code)
	}
}
