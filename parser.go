package markup

import "github.com/rs/zerolog"

// Parse builds the document tree for text.
//
// Parse never fails. A delimiter that opens a span which is never closed
// becomes literal text at the start of the content collected after it. When
// a span closes while a later span is still open, the later delimiter
// becomes literal text at the start of the closed span.
func Parse(text string, opts ...Option) []Node {
	cfg := newConfig(opts)
	st := &parseState{trace: cfg.trace}
	st.scanner = newScanner(text, &st.open, cfg.trace)
	return st.collect()
}

// parseState is the mutable state of a single Parse call. The scanner
// shares open with the tree builder, so both always agree on which spans
// are in scope.
type parseState struct {
	scanner *Scanner
	open    symbolStack
	// frames holds the nodes collected at each nesting level; frames[0] is
	// the top level. A left delimiter pushes a frame, a right delimiter pops
	// one into a span appended to its parent.
	frames [][]Node
	trace  zerolog.Logger
}

func (st *parseState) collect() []Node {
	st.frames = append(st.frames[:0], nil)
	for {
		tok, ok := st.scanner.Next()
		if !ok {
			break
		}
		top := len(st.frames) - 1
		switch tok.Kind {
		case TokenText:
			st.frames[top] = append(st.frames[top], &Text{Value: tok.Text})
		case TokenLeftDelimiter:
			st.frames = append(st.frames, nil)
		case TokenRightDelimiter:
			if top == 0 {
				st.trace.Debug().Int("pos", tok.Pos).Str("symbol", tok.Text).Msg("dangling close")
				st.frames[0] = append(st.frames[0], &Text{Value: tok.Text})
				continue
			}
			span := st.closeSpan(tok, st.frames[top])
			st.frames = st.frames[:top]
			st.frames[top-1] = append(st.frames[top-1], span)
		}
	}
	return st.finish()
}

// closeSpan wraps children in the span for tok.Symbol. Symbols left open
// above it are prepended to the children as literal text.
func (st *parseState) closeSpan(tok Token, children []Node) Node {
	if len(tok.Unclosed) > 0 {
		children = append(literals(tok.Unclosed), children...)
	}
	span := newSpan(tok.Symbol, children)
	st.trace.Debug().Int("pos", tok.Pos).Stringer("span", span.Kind()).Int("children", len(children)).Msg("span")
	return span
}

// finish turns symbols still open at end of input into literal text in
// front of the innermost level, then flattens all levels in order.
func (st *parseState) finish() []Node {
	top := len(st.frames) - 1
	if unclosed := st.open.drain(); len(unclosed) > 0 {
		st.trace.Debug().Str("symbols", string(unclosed)).Msg("unclosed")
		st.frames[top] = append(literals(unclosed), st.frames[top]...)
	}
	if top == 0 {
		return st.frames[0]
	}
	var out []Node
	for _, frame := range st.frames {
		out = append(out, frame...)
	}
	return out
}
