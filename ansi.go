package markup

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rs/zerolog"
)

// ANSIRenderer styles spans with ANSI escape sequences from a Theme.
// Nested spans combine the styles of every enclosing span.
type ANSIRenderer struct {
	styles Styles
	width  int
	trace  zerolog.Logger
}

// NewANSIRenderer creates an ANSI renderer using WithTheme (default theme if
// unset) and wrapping at WithWidth.
func NewANSIRenderer(opts ...Option) *ANSIRenderer {
	cfg := newConfig(opts)
	return &ANSIRenderer{
		styles: cfg.theme.Styles(),
		width:  cfg.width,
		trace:  cfg.trace,
	}
}

func (r *ANSIRenderer) Render(text string) string {
	return r.RenderNodes(Parse(text, WithTrace(r.trace)))
}

func (r *ANSIRenderer) RenderNode(n Node) string {
	return r.RenderNodes([]Node{n})
}

func (r *ANSIRenderer) RenderNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		r.renderTo(&b, n, r.styles.Text)
	}
	return wrapText(b.String(), r.width)
}

func (r *ANSIRenderer) renderTo(b *strings.Builder, n Node, current Style) {
	switch n := n.(type) {
	case *Text:
		writeStyled(b, sanitizeText(n.Value), current)
		return
	case *Strong:
		current = combineStyles(current, r.styles.Strong)
	case *Emphasis:
		current = combineStyles(current, r.styles.Emphasis)
	case *Strikethrough:
		current = combineStyles(current, r.styles.Strikethrough)
	}
	for _, c := range Children(n) {
		r.renderTo(b, c, current)
	}
}

// writeStyled writes text under style and resets afterwards so styles never
// leak past the text they belong to.
func writeStyled(b *strings.Builder, text string, s Style) {
	if text == "" {
		return
	}
	if s.Prefix == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(s.Prefix)
	b.WriteString(text)
	b.WriteString(ansiReset)
}

// wrapText word-wraps s to width printable columns, breaking words that are
// longer than a line. Escape sequences do not count towards the width.
func wrapText(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
