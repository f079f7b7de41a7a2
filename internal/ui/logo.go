package ui

import (
	"strings"
	"unicode/utf8"
)

const brand = "TEAMPULSE"

type font struct {
	height  int
	gap     int // space between letters
	letters map[rune][]string
}

var fontLarge = font{
	height: 6,
	gap:    0,
	letters: map[rune][]string{
		'T': {
			"████████╗",
			"╚══██╔══╝",
			"   ██║   ",
			"   ██║   ",
			"   ██║   ",
			"   ╚═╝   ",
		},
		'E': {
			"███████╗",
			"██╔════╝",
			"█████╗  ",
			"██╔══╝  ",
			"███████╗",
			"╚══════╝",
		},
		'A': {
			" █████╗ ",
			"██╔══██╗",
			"███████║",
			"██╔══██║",
			"██║  ██║",
			"╚═╝  ╚═╝",
		},
		'M': {
			"███╗   ███╗",
			"████╗ ████║",
			"██╔████╔██║",
			"██║╚██╔╝██║",
			"██║ ╚═╝ ██║",
			"╚═╝     ╚═╝",
		},
		'P': {
			"██████╗ ",
			"██╔══██╗",
			"██████╔╝",
			"██╔═══╝ ",
			"██║     ",
			"╚═╝     ",
		},
		'U': {
			"██╗   ██╗",
			"██║   ██║",
			"██║   ██║",
			"██║   ██║",
			"╚██████╔╝",
			" ╚═════╝ ",
		},
		'L': {
			"██╗     ",
			"██║     ",
			"██║     ",
			"██║     ",
			"███████╗",
			"╚══════╝",
		},
		'S': {
			"███████╗",
			"██╔════╝",
			"███████╗",
			"╚════██║",
			"███████║",
			"╚══════╝",
		},
	},
}

var fontMedium = font{
	height: 5,
	gap:    1,
	letters: map[rune][]string{
		'T': {
			"█████",
			"  █  ",
			"  █  ",
			"  █  ",
			"  █  ",
		},
		'E': {
			"████▄",
			"█    ",
			"███  ",
			"█    ",
			"████▀",
		},
		'A': {
			" ▄█▄ ",
			"█   █",
			"█████",
			"█   █",
			"█   █",
		},
		'M': {
			"█▄ ▄█",
			"██▄██",
			"█ █ █",
			"█   █",
			"█   █",
		},
		'P': {
			"████▄",
			"█   █",
			"████▀",
			"█    ",
			"█    ",
		},
		'U': {
			"█   █",
			"█   █",
			"█   █",
			"█   █",
			"▀███▀",
		},
		'L': {
			"█    ",
			"█    ",
			"█    ",
			"█    ",
			"█████",
		},
		'S': {
			"▄████",
			"█    ",
			" ███ ",
			"    █",
			"████▀",
		},
	},
}

// lines lays word out row by row, joining glyphs with the font's gap.
// Letters the font lacks are dropped.
func (f font) lines(word string) []string {
	sep := strings.Repeat(" ", f.gap)
	out := make([]string, f.height)
	for row := range out {
		parts := make([]string, 0, len(word))
		for _, ch := range word {
			if glyph, ok := f.letters[ch]; ok && row < len(glyph) {
				parts = append(parts, glyph[row])
			}
		}
		out[row] = strings.Join(parts, sep)
	}
	return out
}

// width is the display width of word, one column per rune.
func (f font) width(word string) int {
	return utf8.RuneCountInString(f.lines(word)[0])
}

// renderLogo picks the largest font that fits maxWidth after a one-column
// indent, falling back to plain text on narrow terminals.
func renderLogo(maxWidth int) string {
	for _, f := range []font{fontLarge, fontMedium} {
		if f.width(brand)+1 > maxWidth {
			continue
		}
		rows := f.lines(brand)
		for i := range rows {
			rows[i] = " " + rows[i]
		}
		return strings.Join(rows, "\n")
	}
	return " " + brand
}
