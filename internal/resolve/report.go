package resolve

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loadenv/internal/model"
)

var (
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	secretValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("208")) // Orange

	secretTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// RenderChanges formats one line per changed key. Secret values arrive in
// the record already masked; the styling only adds emphasis.
func RenderChanges(changes []model.ChangeRecord) string {
	var b strings.Builder
	for _, c := range changes {
		if c.Secret {
			fmt.Fprintf(&b, "%s=%s %s\n",
				keyStyle.Render(c.Key),
				secretValueStyle.Render(c.DisplayValue),
				secretTagStyle.Render(model.IconSecret+" secret"))
		} else {
			fmt.Fprintf(&b, "%s=%s\n",
				keyStyle.Render(c.Key),
				valueStyle.Render(c.DisplayValue))
		}
	}
	return b.String()
}

// RenderExports prints eval-able export statements for every resolved entry,
// so a host shell can pick up the snapshot with eval "$(loadenv --export)".
func RenderExports(entries []model.ResolvedEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "export %s=%s\n", e.Key, shellQuote(e.Value))
	}
	return b.String()
}

// shellQuote single-quotes a value for sh/zsh/bash, escaping embedded
// single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
