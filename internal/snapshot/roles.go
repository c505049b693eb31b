package snapshot

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alldritt/UIBrowser4-sub001/internal/ax"
)

//go:embed roles.yaml
var rolesYAML []byte

// roleTable maps accessibility roles to AppleScript class names. It is
// loaded once, lazily, and read-only afterwards. A load failure degrades
// script labels to empty rather than failing store operations; the error
// is kept around so the view layer can alert once.
type roleTable struct {
	once    sync.Once
	classes map[string]string
	err     error
}

var scriptClasses roleTable

func (t *roleTable) load() {
	t.once.Do(func() {
		var classes map[string]string
		if err := yaml.Unmarshal(rolesYAML, &classes); err != nil {
			t.err = fmt.Errorf("failed to parse role table: %w", err)
			t.classes = map[string]string{}
			return
		}
		t.classes = classes
	})
}

// className resolves a role to its AppleScript class name. Unmapped roles
// resolve to themselves; callers decide how to display those.
func (t *roleTable) className(role string) (string, bool) {
	t.load()
	if class, ok := t.classes[role]; ok {
		return class, true
	}
	return role, false
}

// hasClassName reports whether the role has a human-readable class mapping.
// Roles without one (and the generic unknown role) get position-based
// ordinals instead of per-role ones.
func (t *roleTable) hasClassName(role string) bool {
	if role == ax.RoleUnknown {
		return false
	}
	_, ok := t.className(role)
	return ok
}

// TableError returns the role-table load error, if any. Intended for a
// one-time user-facing alert; store operations never fail because of it.
func TableError() error {
	scriptClasses.load()
	return scriptClasses.err
}
