// Package markup renders lightweight inline markup to HTML, ANSI or plain text.
//
// Three delimiters are recognised: '*' for strong, '_' for emphasis and '~'
// for strike-through. Whether a delimiter opens a span, closes one or is
// literal text is decided from its immediate neighbours only, so every input
// parses: delimiters that cannot be matched degrade to literal characters.
//
// Core properties:
//   - Character-level scanning over grapheme clusters
//   - Never fails on malformed markup; unmatched delimiters stay literal
//   - Pure, stateless renderers safe for concurrent use
//   - Theme-driven ANSI styling with optional word wrap
//
// Example:
//
//	fmt.Println(markup.RenderString("The *quick*, ~red~ brown fox."))
//	// The <strong>quick</strong>, <del>red</del> brown fox.
//
// For io.Reader input, front matter handling and output formats other than
// HTML, use Render with a RenderRequest.
package markup
