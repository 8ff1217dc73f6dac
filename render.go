// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/avl"
	ui "github.com/gizak/termui/v3"
)

// Styles defines the styling for tree output
type Styles struct {
	Border  lipgloss.Style
	Title   lipgloss.Style
	Diagram lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	plain   bool
}

// terminalColor maps a termui color to lipgloss. ColorClear leaves the
// terminal default in place.
func terminalColor(c ui.Color) lipgloss.TerminalColor {
	if c == ui.ColorClear {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// lipglossStyle carries a termui cell style over to lipgloss.
func lipglossStyle(st ui.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(terminalColor(st.Fg)).
		Background(terminalColor(st.Bg)).
		Bold(st.Modifier&ui.ModifierBold != 0).
		Underline(st.Modifier&ui.ModifierUnderline != 0).
		Reverse(st.Modifier&ui.ModifierReverse != 0)
}

// NewStyles builds styles from the detected terminal palette and the
// configured theme. With color disabled every style renders its input
// unchanged.
func NewStyles(config RenderConfig) *Styles {
	if !config.Color {
		return &Styles{plain: true}
	}
	scheme := colorSchemeFor(detectTerminalMode())
	scheme.applyTheme(config.Theme)
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(terminalColor(scheme.Border.Fg)).
			Padding(0, 1),
		Title:   lipglossStyle(scheme.Title),
		Diagram: lipglossStyle(scheme.Key),
		Label:   lipglossStyle(scheme.Muted),
		Value:   lipglossStyle(scheme.Emphasis),
		Success: lipglossStyle(scheme.Success),
		Error:   lipglossStyle(scheme.Error),
	}
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

// renderTree draws the sideways diagram under a title line.
func renderTree(tree *avl.Tree, styles *Styles, showHeight bool) (string, error) {
	title := fmt.Sprintf("🌳 AVL tree: %d keys, height %d", tree.Size(), tree.Height())
	if tree.IsEmpty() {
		return styles.render(styles.Title, title) + "\n(empty)\n", nil
	}

	var diagram strings.Builder
	if err := tree.Print(&diagram, showHeight); err != nil {
		return "", err
	}
	body := strings.TrimRight(diagram.String(), "\n")

	if styles.plain {
		return title + "\n" + body + "\n", nil
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Title.Render(title),
		styles.Border.Render(styles.Diagram.Render(body)),
	) + "\n", nil
}

// renderCheck reports the result of tree.Check.
func renderCheck(tree *avl.Tree, styles *Styles) (string, error) {
	if err := tree.Check(); err != nil {
		return styles.render(styles.Error, "✗ "+err.Error()) + "\n", err
	}
	msg := fmt.Sprintf("✓ ok: %d keys, height %d", tree.Size(), tree.Height())
	return styles.render(styles.Success, msg) + "\n", nil
}

// renderStats lays the statistics out as aligned label/value lines.
func renderStats(stats TreeStats, styles *Styles) string {
	var b strings.Builder
	for _, row := range stats.Rows() {
		b.WriteString(styles.render(styles.Label, fmt.Sprintf("%-10s", row[0])))
		b.WriteString(" ")
		b.WriteString(styles.render(styles.Value, row[1]))
		b.WriteString("\n")
	}
	return b.String()
}
