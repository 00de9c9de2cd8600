package markup

import (
	"sort"
	"strings"

	"pkt.systems/markup/internal/palette"
)

const ansiReset = palette.Reset

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the ANSI renderer.
type Styles struct {
	Text          Style
	Strong        Style
	Emphasis      Style
	Strikethrough Style
}

// Theme provides named styles for ANSI rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Strong:        style(palette.Bold, p.Strong),
		Emphasis:      style(palette.Italic, p.Emphasis),
		Strikethrough: style(palette.Strike, p.Strikethrough),
	}
}

// combineStyles layers extra on top of base. Prefixes accumulate so a span
// nested in another keeps the outer attributes.
func combineStyles(base Style, extra Style) Style {
	if base.Prefix == "" {
		return extra
	}
	if extra.Prefix == "" {
		return base
	}
	return Style{Prefix: base.Prefix + extra.Prefix}
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(palette.PaletteCatppuccinMocha)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"rose-pine":        theme{name: "rose-pine", styles: stylesFromPalette(palette.PaletteRosePine)},
	"boring":           theme{name: "boring", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
