// Package web serves a loaded snapshot over HTTP for inspection from a
// browser or curl. JSON only, read-only; the store is still mutated from
// this goroutine alone because every handler runs against a store loaded
// once at startup.
package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
	"github.com/alldritt/UIBrowser4-sub001/internal/model"
	"github.com/alldritt/UIBrowser4-sub001/internal/snapshot"
)

//go:embed index.html
var indexHTML []byte

// elementJSON is the wire shape of one element subtree.
type elementJSON struct {
	Role            string        `json:"role"`
	Subrole         string        `json:"subrole,omitempty"`
	RoleDescription string        `json:"roleDescription,omitempty"`
	Title           string        `json:"title,omitempty"`
	Help            string        `json:"help,omitempty"`
	Destroyed       bool          `json:"destroyed,omitempty"`
	Children        []elementJSON `json:"children,omitempty"`
}

// nodeJSON is the wire shape of one cached snapshot node.
type nodeJSON struct {
	IndexPath  string `json:"indexPath"`
	ChildCount int    `json:"childCount"`
	Brief      string `json:"brief"`
	Medium     string `json:"medium"`
	Full       string `json:"full"`
	Script     string `json:"script"`
	Selected   bool   `json:"selected"`
}

func convertElement(el ax.Element) elementJSON {
	role, _ := el.Role()
	subrole, _ := el.Subrole()
	desc, _ := el.RoleDescription()
	title, _ := el.Title()
	help, _ := el.HelpText()

	out := elementJSON{
		Role:            role,
		Subrole:         subrole,
		RoleDescription: desc,
		Title:           title,
		Help:            help,
		Destroyed:       el.Destroyed(),
	}
	for _, child := range el.Children() {
		out.Children = append(out.Children, convertElement(child))
	}
	return out
}

func convertNode(n *model.Node, selected bool) nodeJSON {
	return nodeJSON{
		IndexPath:  n.IndexPath.String(),
		ChildCount: n.ChildCount,
		Brief:      n.BriefDescription,
		Medium:     n.MediumDescription,
		Full:       n.FullDescription,
		Script:     n.FullScriptDescription,
		Selected:   selected,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// StartServer serves the element tree and snapshot state on the given port.
func StartServer(store *snapshot.Store, root ax.Element, port string) error {
	fmt.Printf("Starting uibrowser web server at http://localhost:%s\n", port)
	return http.ListenAndServe(":"+port, Handler(store, root))
}

// Handler builds the HTTP surface: an index page plus the JSON endpoints.
func Handler(store *snapshot.Store, root ax.Element) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	mux.HandleFunc("/api/tree", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, convertElement(root))
	})

	mux.HandleFunc("/api/snapshot", func(w http.ResponseWriter, r *http.Request) {
		selected := store.SelectedNode()
		levels := make([][]nodeJSON, store.Depth())
		for level := 0; level < store.Depth(); level++ {
			for _, n := range store.NodesAt(level) {
				levels[level] = append(levels[level], convertNode(n, n == selected))
			}
		}
		writeJSON(w, map[string]any{
			"levels":      levels,
			"currentPath": store.CurrentPath().String(),
		})
	})

	mux.HandleFunc("/api/node", func(w http.ResponseWriter, r *http.Request) {
		path, err := model.ParseIndexPath(r.URL.Query().Get("path"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		n, err := store.NodeAtPath(path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, convertNode(n, n == store.SelectedNode()))
	})

	return mux
}
