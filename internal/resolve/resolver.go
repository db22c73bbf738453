package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"loadenv/internal/model"
)

// Resolver turns classified values into final strings. It holds the pieces
// of ambient state resolution needs: the sandbox/search boundary, the
// working directory the file is being loaded from, and the command runner.
type Resolver struct {
	HomeDir  string        // Sandbox root for references and boundary for ancestor search
	WorkDir  string        // Directory containing the file being resolved
	MaxDepth int           // Ancestor search cap, 0 means unbounded
	Runner   CommandRunner // Subprocess execution, stubbed in tests
}

// NewResolver builds a resolver rooted at the user's home directory with the
// default command runner.
func NewResolver(workDir string) *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{
		HomeDir: home,
		WorkDir: workDir,
		Runner:  ExecRunner{},
	}
}

// Resolve dispatches a classified value to its resolution path. Literal and
// plain values pass through untouched; no secondary classification is ever
// applied to a resolved result.
func (r *Resolver) Resolve(key string, form model.ValueForm) (string, error) {
	switch form.Kind {
	case model.FormPlain, model.FormLiteral:
		return form.Value, nil
	case model.FormReference:
		return r.resolveReference(form.RefPath, form.RefKey)
	case model.FormDeferred:
		return r.searchAncestors(r.WorkDir, key)
	case model.FormCommand:
		return r.Runner.Run(form.Command)
	}
	return "", fmt.Errorf("unknown value form %v", form.Kind)
}

// resolveReference validates the target path and performs a one-hop lookup.
// Paths must be absolute and live under the home directory; the sandbox
// keeps a .env file from reading arbitrary filesystem locations.
func (r *Resolver) resolveReference(path, key string) (string, error) {
	if !filepath.IsAbs(path) || !underDir(r.HomeDir, path) {
		return "", fmt.Errorf("%w: %s", ErrPathInvalid, path)
	}
	if key == "" {
		return "", fmt.Errorf("%w: missing key in reference to %s", ErrPathInvalid, path)
	}
	return LookupKey(path, key)
}

func underDir(root, path string) bool {
	if root == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
