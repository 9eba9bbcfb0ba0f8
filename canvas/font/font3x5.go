package font

// Font3x5 is a 3-wide, 5-tall digit-only stencil font for space-constrained
// demos (a 64x32 panel fits roughly 16 columns of these glyphs), grounded on
// spec Section 4.5's requirement for more than one font-specific (W, H).
var Font3x5 Font = font3x5{glyphs: build3x5()}

type font3x5 struct {
	glyphs map[rune]*Stencil
}

func (f font3x5) StencilFor(r rune) *Stencil {
	if s, ok := f.glyphs[r]; ok {
		return s
	}
	return blank3x5
}

var blank3x5 = glyph3x5(
	"...",
	"...",
	"...",
	"...",
	"...",
)

func glyph3x5(rows ...string) *Stencil {
	if len(rows) != 5 {
		panic("font: font3x5 glyph must have exactly 5 rows")
	}
	bits := make([]byte, 0, 3*5)
	for _, row := range rows {
		if len(row) != 3 {
			panic("font: font3x5 glyph row must have exactly 3 columns")
		}
		for _, c := range row {
			if c == '#' {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return NewStencil(3, 5, bits)
}

func build3x5() map[rune]*Stencil {
	return map[rune]*Stencil{
		' ': blank3x5,
		'0': glyph3x5(
			"###",
			"#.#",
			"#.#",
			"#.#",
			"###",
		),
		'1': glyph3x5(
			".#.",
			"##.",
			".#.",
			".#.",
			"###",
		),
		'2': glyph3x5(
			"###",
			"..#",
			"###",
			"#..",
			"###",
		),
		'3': glyph3x5(
			"###",
			"..#",
			".##",
			"..#",
			"###",
		),
		'4': glyph3x5(
			"#.#",
			"#.#",
			"###",
			"..#",
			"..#",
		),
		'5': glyph3x5(
			"###",
			"#..",
			"###",
			"..#",
			"###",
		),
		'6': glyph3x5(
			"###",
			"#..",
			"###",
			"#.#",
			"###",
		),
		'7': glyph3x5(
			"###",
			"..#",
			"..#",
			"..#",
			"..#",
		),
		'8': glyph3x5(
			"###",
			"#.#",
			"###",
			"#.#",
			"###",
		),
		'9': glyph3x5(
			"###",
			"#.#",
			"###",
			"..#",
			"###",
		),
	}
}
