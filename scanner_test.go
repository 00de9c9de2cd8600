package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanAll(text string) []Token {
	s := NewScanner(text)
	var out []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestScannerSimpleSpan(t *testing.T) {
	got := scanAll("a *b* c")
	want := []Token{
		{Kind: TokenText, Text: "a ", Pos: 0},
		{Kind: TokenLeftDelimiter, Text: "*", Symbol: '*', Pos: 2},
		{Kind: TokenText, Text: "b", Pos: 3},
		{Kind: TokenRightDelimiter, Text: "*", Symbol: '*', Pos: 4},
		{Kind: TokenText, Text: " c", Pos: 5},
	}
	require.Equal(t, want, got)
}

func TestScannerEmpty(t *testing.T) {
	s := NewScanner("")
	_, ok := s.Next()
	require.False(t, ok)
	_, ok = s.Next()
	require.False(t, ok, "exhausted scanner must stay exhausted")
}

func TestScannerDelimiterBetweenSpacesIsLiteral(t *testing.T) {
	got := scanAll("a * b")
	want := []Token{
		{Kind: TokenText, Text: "a ", Pos: 0},
		{Kind: TokenText, Text: "*", Pos: 2},
		{Kind: TokenText, Text: " b", Pos: 3},
	}
	require.Equal(t, want, got)
}

func TestScannerIntrawordDelimitersAreLiteral(t *testing.T) {
	for _, text := range []string{"snake_case_name", "2*3*4", "a~b~c"} {
		for _, tok := range scanAll(text) {
			require.Equal(t, TokenText, tok.Kind, "%q produced %v token %q", text, tok.Kind, tok.Text)
		}
	}
}

func TestScannerNestedSpans(t *testing.T) {
	got := scanAll("_*x*_")
	kinds := make([]TokenKind, 0, len(got))
	for _, tok := range got {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{
		TokenLeftDelimiter,
		TokenLeftDelimiter,
		TokenText,
		TokenRightDelimiter,
		TokenRightDelimiter,
	}, kinds)
	require.Equal(t, '_', got[0].Symbol)
	require.Equal(t, '*', got[1].Symbol)
	require.Equal(t, '*', got[3].Symbol)
	require.Equal(t, '_', got[4].Symbol)
}

func TestScannerCrossingCloseReportsUnclosed(t *testing.T) {
	got := scanAll("*a _b* c")
	require.Len(t, got, 6)
	right := got[4]
	require.Equal(t, TokenRightDelimiter, right.Kind)
	require.Equal(t, '*', right.Symbol)
	require.Equal(t, 5, right.Pos)
	require.Equal(t, []rune{'_'}, right.Unclosed)
	require.Equal(t, Token{Kind: TokenText, Text: " c", Pos: 6}, got[5])
}

func TestScannerSymbolAlreadyOpenIsLiteral(t *testing.T) {
	got := scanAll("**a**")
	want := []Token{
		{Kind: TokenLeftDelimiter, Text: "*", Symbol: '*', Pos: 0},
		{Kind: TokenText, Text: "*", Pos: 1},
		{Kind: TokenText, Text: "a", Pos: 2},
		{Kind: TokenRightDelimiter, Text: "*", Symbol: '*', Pos: 3},
		{Kind: TokenText, Text: "*", Pos: 4},
	}
	require.Equal(t, want, got)
}

func TestScannerAdjacentPairFormsEmptySpan(t *testing.T) {
	got := scanAll("~~")
	require.Len(t, got, 2)
	require.Equal(t, TokenLeftDelimiter, got[0].Kind)
	require.Equal(t, TokenRightDelimiter, got[1].Kind)
	require.Nil(t, got[1].Unclosed)
}

func TestScannerTildeIsBoundary(t *testing.T) {
	got := scanAll("~*a*~")
	require.Equal(t, TokenLeftDelimiter, got[1].Kind)
	require.Equal(t, TokenRightDelimiter, got[3].Kind)
	require.Equal(t, TokenRightDelimiter, got[4].Kind)
}

func TestScannerGraphemeClusters(t *testing.T) {
	got := scanAll("*e\u0301*")
	require.Len(t, got, 3)
	require.Equal(t, "e\u0301", got[1].Text)
	require.Equal(t, TokenRightDelimiter, got[2].Kind)
	require.Equal(t, 4, got[2].Pos)

	// A delimiter carrying a combining mark is not a delimiter.
	got = scanAll("a *\u0301b")
	require.Equal(t, []Token{{Kind: TokenText, Text: "a *\u0301b", Pos: 0}}, got)
}

func TestScannerPositionsAreByteOffsets(t *testing.T) {
	got := scanAll("\u00e9 *b*")
	require.Equal(t, 0, got[0].Pos)
	require.Equal(t, "\u00e9 ", got[0].Text)
	require.Equal(t, 3, got[1].Pos)
	require.Equal(t, 4, got[2].Pos)
}

func TestScannerLineBreakBlocksOpen(t *testing.T) {
	got := scanAll("a *\nb*")
	for _, tok := range got {
		require.Equal(t, TokenText, tok.Kind)
	}
}

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "text", TokenText.String())
	require.Equal(t, "left", TokenLeftDelimiter.String())
	require.Equal(t, "right", TokenRightDelimiter.String())
}

func TestSymbolStackPopUntil(t *testing.T) {
	st := &symbolStack{}
	st.push('*')
	st.push('_')
	st.push('~')
	require.Equal(t, []rune{'_', '~'}, st.popUntil('*'))
	require.Equal(t, 0, st.len())

	st.push('*')
	require.Nil(t, st.popUntil('*'))
	require.Nil(t, st.drain())
}
