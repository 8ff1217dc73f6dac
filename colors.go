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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI codes for plain fmt output
const (
	Green  = "\033[32m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Reset  = "\033[0m"
)

// ColorScheme holds the termui cell style of every role in the styled output.
type ColorScheme struct {
	Title    ui.Style
	Border   ui.Style
	Key      ui.Style
	Root     ui.Style
	Muted    ui.Style
	Success  ui.Style
	Warning  ui.Style
	Error    ui.Style
	Emphasis ui.Style
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG format is typically "foreground;background"
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := os.Getenv(env); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// createLightColorScheme returns a color scheme optimized for light terminals
func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:    ui.NewStyle(ui.Color(4), ui.ColorClear, ui.ModifierBold), // Dark Blue
		Border:   ui.NewStyle(ui.Color(8)),
		Key:      ui.NewStyle(ui.ColorBlack),
		Root:     ui.NewStyle(ui.ColorMagenta, ui.ColorClear, ui.ModifierBold),
		Muted:    ui.NewStyle(ui.Color(240)),
		Success:  ui.NewStyle(ui.Color(2), ui.ColorClear, ui.ModifierBold),
		Warning:  ui.NewStyle(ui.Color(3)),
		Error:    ui.NewStyle(ui.ColorRed, ui.ColorClear, ui.ModifierBold),
		Emphasis: ui.NewStyle(ui.Color(6), ui.ColorClear, ui.ModifierBold),
	}
}

// createDarkColorScheme returns a color scheme optimized for dark terminals
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:    ui.NewStyle(ui.Color(14), ui.ColorClear, ui.ModifierBold), // Bright Cyan
		Border:   ui.NewStyle(ui.Color(240)),
		Key:      ui.NewStyle(ui.ColorWhite),
		Root:     ui.NewStyle(ui.Color(13), ui.ColorClear, ui.ModifierBold),
		Muted:    ui.NewStyle(ui.Color(245)),
		Success:  ui.NewStyle(ui.Color(10), ui.ColorClear, ui.ModifierBold),
		Warning:  ui.NewStyle(ui.Color(11)),
		Error:    ui.NewStyle(ui.Color(9), ui.ColorClear, ui.ModifierBold),
		Emphasis: ui.NewStyle(ui.Color(6), ui.ColorClear, ui.ModifierBold),
	}
}

// colorSchemeFor picks the palette for a terminal mode; unknown means dark.
func colorSchemeFor(mode TerminalMode) *ColorScheme {
	if mode == TerminalModeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

var themeRoles = []string{"title", "border", "key", "root", "muted", "success", "warning", "error", "emphasis"}

func (c *ColorScheme) role(name string) *ui.Style {
	switch strings.ToLower(name) {
	case "title":
		return &c.Title
	case "border":
		return &c.Border
	case "key":
		return &c.Key
	case "root":
		return &c.Root
	case "muted":
		return &c.Muted
	case "success":
		return &c.Success
	case "warning":
		return &c.Warning
	case "error":
		return &c.Error
	case "emphasis":
		return &c.Emphasis
	}
	return nil
}

// applyTheme overrides palette roles with styles written in termui markup,
// e.g. "fg:green,mod:bold". Unknown roles and bad styles are skipped.
func (c *ColorScheme) applyTheme(theme map[string]string) {
	for name, spec := range theme {
		target := c.role(name)
		if target == nil {
			continue
		}
		if style, err := parseStyleSpec(spec, *target); err == nil {
			*target = style
		}
	}
}

// parseStyleSpec reads a termui style item list on top of base. Only the
// color and modifier names termui's style parser knows are accepted.
func parseStyleSpec(spec string, base ui.Style) (ui.Style, error) {
	spec = strings.ReplaceAll(strings.ToLower(spec), " ", "")
	if spec == "" {
		return base, fmt.Errorf("empty style")
	}
	for _, item := range strings.Split(spec, ",") {
		field, value, ok := strings.Cut(item, ":")
		if !ok {
			return base, fmt.Errorf("invalid style item %q", item)
		}
		switch field {
		case "fg", "bg":
			if _, known := ui.StyleParserColorMap[value]; !known {
				return base, fmt.Errorf("unknown color %q", value)
			}
		case "mod":
			if !styleModifiers[value] {
				return base, fmt.Errorf("unknown modifier %q", value)
			}
		default:
			return base, fmt.Errorf("unknown style field %q", field)
		}
	}

	cells := ui.ParseStyles("["+styleSampleText+"]("+spec+")", base)
	if len(cells) != len(styleSampleText) {
		return base, fmt.Errorf("invalid style %q", spec)
	}
	return cells[0].Style, nil
}

const styleSampleText = "x"

var styleModifiers = map[string]bool{"bold": true, "underline": true, "reverse": true}
