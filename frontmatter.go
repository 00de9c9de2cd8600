package markup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// FrontMatter is a metadata block found at the very start of a document.
type FrontMatter struct {
	// Delimiter is "---" (YAML), "+++" (TOML) or ";;;" (JSON).
	Delimiter string
	Raw       []byte
	Values    map[string]any
}

// splitFrontMatter detects a front matter block at the start of src. The
// block must open with a delimiter line, have a metadata-looking first line
// and be closed by the same delimiter. It returns the block and the rest of
// the document.
func splitFrontMatter(src []byte) (FrontMatter, []byte, bool) {
	openLine, openNext := nextLine(src, 0)
	delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return FrontMatter{}, src, false
	}
	secondLine, secondNext := nextLine(src, openNext)
	if !frontMatterMetadataLikely(secondLine) {
		return FrontMatter{}, src, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, secondNext, delim)
	if !found {
		return FrontMatter{}, src, false
	}
	fm := FrontMatter{
		Delimiter: string(delim),
		Raw:       src[openNext:closeStart],
	}
	return fm, src[closeNext:], true
}

func (fm *FrontMatter) decode() error {
	values := map[string]any{}
	var err error
	switch fm.Delimiter {
	case "---":
		err = yaml.Unmarshal(fm.Raw, &values)
	case "+++":
		err = toml.Unmarshal(fm.Raw, &values)
	case ";;;":
		err = json.Unmarshal(fm.Raw, &values)
	default:
		err = fmt.Errorf("unknown delimiter %q", fm.Delimiter)
	}
	if err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	fm.Values = values
	return nil
}

// nextLine returns the line starting at start without its line ending, and
// the offset just past it.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the start of the closing delimiter
// line and the offset just past it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
