package layout

// glyphRows is the base height and width of every glyph cell grid.
const glyphRows = 5

// glyph is a 5x5 cell grid; '#' marks a filled cell, ' ' an empty one.
type glyph [glyphRows]string

// glyphs maps every character that can appear in a MM:SS readout to its cell grid.
//
//nolint:gochecknoglobals // Process-wide immutable glyph table.
var glyphs = map[rune]glyph{
	'0': {
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	},
	'1': {
		"  #  ",
		" ##  ",
		"  #  ",
		"  #  ",
		"#####",
	},
	'2': {
		"#####",
		"    #",
		"#####",
		"#    ",
		"#####",
	},
	'3': {
		"#####",
		"    #",
		"#####",
		"    #",
		"#####",
	},
	'4': {
		"#   #",
		"#   #",
		"#####",
		"    #",
		"    #",
	},
	'5': {
		"#####",
		"#    ",
		"#####",
		"    #",
		"#####",
	},
	'6': {
		"#####",
		"#    ",
		"#####",
		"#   #",
		"#####",
	},
	'7': {
		"#####",
		"    #",
		"    #",
		"    #",
		"    #",
	},
	'8': {
		"#####",
		"#   #",
		"#####",
		"#   #",
		"#####",
	},
	'9': {
		"#####",
		"#   #",
		"#####",
		"    #",
		"#####",
	},
	':': {
		"     ",
		"  #  ",
		"     ",
		"  #  ",
		"     ",
	},
}

// lookupGlyph returns the grid for ch, substituting the colon glyph for
// anything outside the table so a malformed readout never panics.
func lookupGlyph(ch rune) glyph {
	if g, ok := glyphs[ch]; ok {
		return g
	}
	return glyphs[':']
}
