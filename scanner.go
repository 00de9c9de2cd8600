package markup

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/rs/zerolog"
)

// Scanner splits text into Tokens one at a time.
//
// A Scanner keeps the set of currently open delimiter symbols. The set is
// pushed when a left delimiter is emitted and popped down to the matching
// symbol when a right delimiter is emitted. A Scanner is not safe for
// concurrent use.
type Scanner struct {
	input string
	// bounds holds the byte offset of every character followed by len(input).
	bounds []int
	pos    int
	open   *symbolStack
	trace  zerolog.Logger
}

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string, opts ...Option) *Scanner {
	cfg := newConfig(opts)
	return newScanner(text, &symbolStack{}, cfg.trace)
}

func newScanner(text string, open *symbolStack, trace zerolog.Logger) *Scanner {
	return &Scanner{
		input:  text,
		bounds: characterBounds(text),
		open:   open,
		trace:  trace,
	}
}

func characterBounds(text string) []int {
	bounds := make([]int, 0, len(text)+1)
	off := 0
	seg := graphemes.FromString(text)
	for seg.Next() {
		bounds = append(bounds, off)
		off += len(seg.Value())
	}
	return append(bounds, off)
}

func (s *Scanner) count() int {
	return len(s.bounds) - 1
}

// at returns the character at index i, or false when i is out of range.
func (s *Scanner) at(i int) (string, bool) {
	if i < 0 || i >= s.count() {
		return "", false
	}
	return s.input[s.bounds[i]:s.bounds[i+1]], true
}

// Next returns the next token. It returns false once the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	c, ok := s.at(s.pos)
	if !ok {
		return Token{}, false
	}
	if !isDelimiter(c) {
		start := s.pos
		for s.pos < s.count() {
			next, _ := s.at(s.pos)
			if isDelimiter(next) {
				break
			}
			s.pos++
		}
		tok := Token{Kind: TokenText, Text: s.input[s.bounds[start]:s.bounds[s.pos]], Pos: s.bounds[start]}
		s.trace.Debug().Int("pos", tok.Pos).Str("text", tok.Text).Msg("text")
		return tok, true
	}
	symbol := firstRune(c)
	if tok, ok := s.scanLeft(c, symbol); ok {
		return tok, true
	}
	if tok, ok := s.scanRight(c, symbol); ok {
		return tok, true
	}
	tok := Token{Kind: TokenText, Text: c, Pos: s.bounds[s.pos]}
	s.trace.Debug().Int("pos", tok.Pos).Str("symbol", c).Msg("literal")
	s.pos++
	return tok, true
}

// scanLeft opens a span when the previous character is a boundary (or there
// is none), the next character exists and is not whitespace, and the symbol
// is not already open.
func (s *Scanner) scanLeft(c string, symbol rune) (Token, bool) {
	next, ok := s.at(s.pos + 1)
	if !ok || isSpace(next) {
		return Token{}, false
	}
	if prev, ok := s.at(s.pos - 1); ok && !isBoundary(prev) {
		return Token{}, false
	}
	if s.open.contains(symbol) {
		return Token{}, false
	}
	s.open.push(symbol)
	tok := Token{Kind: TokenLeftDelimiter, Text: c, Symbol: symbol, Pos: s.bounds[s.pos]}
	s.trace.Debug().Int("pos", tok.Pos).Str("symbol", c).Int("depth", s.open.len()).Msg("open")
	s.pos++
	return tok, true
}

// scanRight closes a span when there is a non-whitespace previous character,
// the next character is a boundary (or there is none), and the symbol is
// open.
func (s *Scanner) scanRight(c string, symbol rune) (Token, bool) {
	prev, ok := s.at(s.pos - 1)
	if !ok || isSpace(prev) {
		return Token{}, false
	}
	if next, ok := s.at(s.pos + 1); ok && !isBoundary(next) {
		return Token{}, false
	}
	if !s.open.contains(symbol) {
		return Token{}, false
	}
	unclosed := s.open.popUntil(symbol)
	tok := Token{Kind: TokenRightDelimiter, Text: c, Symbol: symbol, Pos: s.bounds[s.pos], Unclosed: unclosed}
	s.trace.Debug().Int("pos", tok.Pos).Str("symbol", c).Str("unclosed", string(unclosed)).Msg("close")
	s.pos++
	return tok, true
}

// symbolStack records open delimiter symbols in the order they were opened.
type symbolStack struct {
	items []rune
}

func (st *symbolStack) len() int {
	return len(st.items)
}

func (st *symbolStack) push(r rune) {
	st.items = append(st.items, r)
}

func (st *symbolStack) contains(r rune) bool {
	for _, item := range st.items {
		if item == r {
			return true
		}
	}
	return false
}

// popUntil removes the topmost r and everything above it. It returns the
// symbols that were above r, bottom first.
func (st *symbolStack) popUntil(r rune) []rune {
	for i := len(st.items) - 1; i >= 0; i-- {
		if st.items[i] != r {
			continue
		}
		var above []rune
		if i+1 < len(st.items) {
			above = append(above, st.items[i+1:]...)
		}
		st.items = st.items[:i]
		return above
	}
	return st.drain()
}

// drain empties the stack and returns its contents, bottom first.
func (st *symbolStack) drain() []rune {
	if len(st.items) == 0 {
		return nil
	}
	out := append([]rune(nil), st.items...)
	st.items = st.items[:0]
	return out
}
