package resolve

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadenv/internal/model"
)

// stubRunner fakes command execution for tests.
type stubRunner struct {
	out   string
	err   error
	calls []string
}

func (s *stubRunner) Run(command string) (string, error) {
	s.calls = append(s.calls, command)
	return s.out, s.err
}

func TestResolve_Passthrough(t *testing.T) {
	r := &Resolver{}

	value, err := r.Resolve("K", model.ValueForm{Kind: model.FormPlain, Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	value, err = r.Resolve("K", model.ValueForm{Kind: model.FormLiteral, Value: "${skate get x}"})
	require.NoError(t, err)
	assert.Equal(t, "${skate get x}", value, "literal payload resolves unchanged")
}

func TestResolve_Reference(t *testing.T) {
	home := t.TempDir()
	target := filepath.Join(home, "shared.env")
	writeTestFile(t, target, "TOKEN=\"tok123\"\n")

	r := &Resolver{HomeDir: home}

	value, err := r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: target, RefKey: "TOKEN"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", value, "one quote layer stripped")
}

func TestResolve_ReferenceSandbox(t *testing.T) {
	home := t.TempDir()
	r := &Resolver{HomeDir: home}

	// Relative paths are rejected.
	_, err := r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: "shared.env", RefKey: "TOKEN"})
	assert.ErrorIs(t, err, ErrPathInvalid)

	// Absolute paths outside the home boundary are rejected.
	_, err = r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: "/etc/passwd", RefKey: "root"})
	assert.ErrorIs(t, err, ErrPathInvalid)

	// A reference without a key never reads the file.
	_, err = r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: filepath.Join(home, "x.env")})
	assert.ErrorIs(t, err, ErrPathInvalid)
}

func TestResolve_ReferenceFailures(t *testing.T) {
	home := t.TempDir()
	r := &Resolver{HomeDir: home}

	_, err := r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: filepath.Join(home, "absent.env"), RefKey: "TOKEN"})
	assert.ErrorIs(t, err, ErrFileNotFound)

	target := filepath.Join(home, "shared.env")
	writeTestFile(t, target, "OTHER=x\n")
	_, err = r.Resolve("K", model.ValueForm{Kind: model.FormReference, RefPath: target, RefKey: "TOKEN"})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestResolve_Command(t *testing.T) {
	runner := &stubRunner{out: "hello"}
	r := &Resolver{Runner: runner}

	value, err := r.Resolve("K", model.ValueForm{Kind: model.FormCommand, Command: "skate get bar@internal"})
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
	assert.Equal(t, []string{"skate get bar@internal"}, runner.calls)
}

func TestResolve_CommandFailure(t *testing.T) {
	runner := &stubRunner{err: ErrCommandFailed}
	r := &Resolver{Runner: runner}

	_, err := r.Resolve("K", model.ValueForm{Kind: model.FormCommand, Command: "skate get nope"})
	assert.ErrorIs(t, err, ErrCommandFailed)
}
