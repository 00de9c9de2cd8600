// Package palette holds the ANSI colour palettes behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette assigns a foreground colour sequence to each span kind. An empty
// string leaves the terminal colour unchanged.
type Palette struct {
	Text          string
	Strong        string
	Emphasis      string
	Strikethrough string
}

// Fg returns a 24-bit foreground colour sequence.
func Fg(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

var (
	PaletteDefault = Palette{
		Strong:        Fg(255, 203, 107),
		Emphasis:      Fg(130, 170, 255),
		Strikethrough: Fg(128, 128, 128),
	}
	PaletteDoomGruvbox = Palette{
		Text:          Fg(235, 219, 178),
		Strong:        Fg(250, 189, 47),
		Emphasis:      Fg(131, 165, 152),
		Strikethrough: Fg(146, 131, 116),
	}
	PaletteDoomDracula = Palette{
		Text:          Fg(248, 248, 242),
		Strong:        Fg(255, 121, 198),
		Emphasis:      Fg(139, 233, 253),
		Strikethrough: Fg(98, 114, 164),
	}
	PaletteDoomNord = Palette{
		Text:          Fg(216, 222, 233),
		Strong:        Fg(136, 192, 208),
		Emphasis:      Fg(163, 190, 140),
		Strikethrough: Fg(76, 86, 106),
	}
	PaletteTokyoNight = Palette{
		Text:          Fg(192, 202, 245),
		Strong:        Fg(255, 158, 100),
		Emphasis:      Fg(125, 207, 255),
		Strikethrough: Fg(86, 95, 137),
	}
	PaletteCatppuccinMocha = Palette{
		Text:          Fg(205, 214, 244),
		Strong:        Fg(249, 226, 175),
		Emphasis:      Fg(203, 166, 247),
		Strikethrough: Fg(108, 112, 134),
	}
	PaletteSolarizedDark = Palette{
		Text:          Fg(131, 148, 150),
		Strong:        Fg(181, 137, 0),
		Emphasis:      Fg(38, 139, 210),
		Strikethrough: Fg(88, 110, 117),
	}
	PaletteSolarizedLight = Palette{
		Text:          Fg(101, 123, 131),
		Strong:        Fg(203, 75, 22),
		Emphasis:      Fg(38, 139, 210),
		Strikethrough: Fg(147, 161, 161),
	}
	PaletteGithubLight = Palette{
		Text:          Fg(36, 41, 47),
		Strong:        Fg(207, 34, 46),
		Emphasis:      Fg(9, 105, 218),
		Strikethrough: Fg(110, 119, 129),
	}
	PaletteGithubDark = Palette{
		Text:          Fg(201, 209, 217),
		Strong:        Fg(255, 123, 114),
		Emphasis:      Fg(121, 192, 255),
		Strikethrough: Fg(139, 148, 158),
	}
	PaletteRosePine = Palette{
		Text:          Fg(224, 222, 244),
		Strong:        Fg(246, 193, 119),
		Emphasis:      Fg(196, 167, 231),
		Strikethrough: Fg(110, 106, 134),
	}
)
