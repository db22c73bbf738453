package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loadenv/internal/model"
	"loadenv/internal/resolve"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	secretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Loading environment... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	// LEFT PANEL: resolved entries
	var left strings.Builder
	left.WriteString(labelStyle.Render("Environment Entries"))
	left.WriteString("\n\n")

	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	offset := 0
	if m.SelectedIdx >= visibleItems {
		offset = m.SelectedIdx - visibleItems + 1
	}

	for row := 0; row < visibleItems && offset+row < len(m.FilteredIndices); row++ {
		idx := m.FilteredIndices[offset+row]
		entry := m.Result.Entries[idx]
		line := m.listLine(entry, leftWidth-6)
		if offset+row == m.SelectedIdx {
			left.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			left.WriteString(unselectedItemStyle.Render(line))
		}
		left.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		left.WriteString(dimStyle.Render("  (no matching entries)"))
	}

	leftBox := borderStyle.Width(leftWidth).Height(boxHeight).Render(left.String())

	// RIGHT PANEL: details for the selected entry
	m.DetailsViewport.Width = rightWidth - 2
	m.DetailsViewport.Height = interiorHeight
	rightBox := borderStyle.Width(rightWidth).Height(boxHeight).Render(m.DetailsViewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)

	// Footer
	var footer string
	if m.InputMode {
		footer = "Search: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ navigate · / search · esc clear · q quit")
	}

	title := titleStyle.Render(fmt.Sprintf("loadenv %s — %d entries, %d changed, %d skipped",
		model.Version, len(m.Result.Entries), len(m.Result.Changes), len(m.Result.Skipped)))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

// listLine renders one entry for the list pane, masking secret values.
func (m AppModel) listLine(entry model.ResolvedEntry, maxWidth int) string {
	display := entry.Value
	if entry.Secret {
		display = resolve.Mask(entry.Value)
	}
	changed := model.IconUnchanged
	if entry.Changed {
		changed = model.IconChanged
	}
	line := fmt.Sprintf("%s%s %s=%s", changed, model.FormIcon(entry.Form.Kind), entry.Key, display)
	if maxWidth > 3 && len(line) > maxWidth {
		line = line[:maxWidth-1] + "…"
	}
	return line
}

// detailContent builds the right-pane text for the selected entry.
func (m AppModel) detailContent() string {
	if m.SelectedIdx >= len(m.FilteredIndices) {
		return dimStyle.Render("Nothing selected.")
	}
	entry := m.Result.Entries[m.FilteredIndices[m.SelectedIdx]]

	display := entry.Value
	if entry.Secret {
		display = resolve.Mask(entry.Value) + " " + secretStyle.Render(model.IconSecret+" secret")
	}
	changed := "no"
	if entry.Changed {
		changed = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Key"), entry.Key)
	fmt.Fprintf(&b, "%s %s:%d\n", labelStyle.Render("Source"), entry.File, entry.Line)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Form"), entry.Form.Kind)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Raw"), entry.RawValue)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Resolved"), display)
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Changed"), changed)

	b.WriteString(labelStyle.Render("File context"))
	b.WriteString("\n")
	for _, line := range model.SourceContext(entry.File, entry.Line, 2) {
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}

	if len(m.Result.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Skipped keys"))
		b.WriteString("\n")
		for _, s := range m.Result.Skipped {
			fmt.Fprintf(&b, "%s %s — %s\n", model.IconSkipped, s.Key, s.Reason)
		}
	}
	return b.String()
}
