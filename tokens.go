package markup

// Token is a classified segment of the input produced by a Scanner.
type Token struct {
	Kind TokenKind
	// Text is the literal source text of the token. For delimiters it is
	// the delimiter character itself.
	Text string
	// Symbol is the delimiter for TokenLeftDelimiter and TokenRightDelimiter.
	Symbol rune
	// Pos is the byte offset of the token in the input.
	Pos int
	// Unclosed lists, in the order they were opened, the symbols that were
	// still open above Symbol when a right delimiter closed it.
	Unclosed []rune
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenLeftDelimiter
	tokenRightDelimiter
)

const (
	// TokenText represents a run of literal characters.
	TokenText tokenKind = tokenText
	// TokenLeftDelimiter marks a delimiter that opens a span.
	TokenLeftDelimiter tokenKind = tokenLeftDelimiter
	// TokenRightDelimiter marks a delimiter that closes a span.
	TokenRightDelimiter tokenKind = tokenRightDelimiter
)

func (k tokenKind) String() string {
	switch k {
	case tokenText:
		return "text"
	case tokenLeftDelimiter:
		return "left"
	case tokenRightDelimiter:
		return "right"
	default:
		return "unknown"
	}
}
