package shell

import (
	"fmt"
	"strings"
)

// Shell generates the directory-change hook for a specific shell. The hook
// re-runs the loader on every cd and evals its export output; the change
// report goes to stderr so eval never sees it.
type Shell interface {
	Name() string
	Hook(executable string) string
}

// Zsh hooks into chpwd_functions.
type Zsh struct{}

func (Zsh) Name() string { return "zsh" }

func (Zsh) Hook(executable string) string {
	return fmt.Sprintf(`_loadenv_chpwd() {
  eval "$(%s --export)"
}
typeset -ag chpwd_functions
if [[ -z "${chpwd_functions[(r)_loadenv_chpwd]}" ]]; then
  chpwd_functions+=(_loadenv_chpwd)
fi
_loadenv_chpwd
`, executable)
}

// Bash has no chpwd equivalent, so the hook piggybacks on PROMPT_COMMAND and
// only reloads when the directory actually changed.
type Bash struct{}

func (Bash) Name() string { return "bash" }

func (Bash) Hook(executable string) string {
	return fmt.Sprintf(`_loadenv_prompt() {
  if [[ "$PWD" != "${_LOADENV_LAST_PWD-}" ]]; then
    _LOADENV_LAST_PWD="$PWD"
    eval "$(%s --export)"
  fi
}
if [[ "$PROMPT_COMMAND" != *_loadenv_prompt* ]]; then
  PROMPT_COMMAND="_loadenv_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
_loadenv_prompt
`, executable)
}

// Detect picks the hook generator from a $SHELL-style path or name.
// Defaults to Zsh, the shell the loader grew up in.
func Detect(shellPath string) Shell {
	if strings.Contains(shellPath, "bash") {
		return Bash{}
	}
	return Zsh{}
}
