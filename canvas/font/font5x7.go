package font

// font5x7 is a 5-wide, 7-tall monospace stencil font covering space, the
// decimal digits, and uppercase A-Z -- enough for clock faces, counters, and
// short banners on a 64x32 panel (roughly 10 columns of glyphs at full
// width). Named Font5x7 to match the font used by examples/numbers.rs in
// the Rust original.
var Font5x7 Font = font5x7{glyphs: build5x7()}

type font5x7 struct {
	glyphs map[rune]*Stencil
	blank  *Stencil
}

func (f font5x7) StencilFor(r rune) *Stencil {
	if s, ok := f.glyphs[r]; ok {
		return s
	}
	return blank5x7
}

var blank5x7 = glyph5x7(
	".....",
	".....",
	".....",
	".....",
	".....",
	".....",
	".....",
)

// glyph5x7 turns 7 rows of 5 characters ('#' opaque, '.' transparent) into a
// Stencil.
func glyph5x7(rows ...string) *Stencil {
	if len(rows) != 7 {
		panic("font: font5x7 glyph must have exactly 7 rows")
	}
	bits := make([]byte, 0, 5*7)
	for _, row := range rows {
		if len(row) != 5 {
			panic("font: font5x7 glyph row must have exactly 5 columns")
		}
		for _, c := range row {
			if c == '#' {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	return NewStencil(5, 7, bits)
}

func build5x7() map[rune]*Stencil {
	g := map[rune]*Stencil{
		' ': blank5x7,
		'0': glyph5x7(
			".###.",
			"#...#",
			"#..##",
			"#.#.#",
			"##..#",
			"#...#",
			".###.",
		),
		'1': glyph5x7(
			"..#..",
			".##..",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
			".###.",
		),
		'2': glyph5x7(
			".###.",
			"#...#",
			"....#",
			"...#.",
			"..#..",
			".#...",
			"#####",
		),
		'3': glyph5x7(
			".###.",
			"#...#",
			"....#",
			"..##.",
			"....#",
			"#...#",
			".###.",
		),
		'4': glyph5x7(
			"...#.",
			"..##.",
			".#.#.",
			"#..#.",
			"#####",
			"...#.",
			"...#.",
		),
		'5': glyph5x7(
			"#####",
			"#....",
			"####.",
			"....#",
			"....#",
			"#...#",
			".###.",
		),
		'6': glyph5x7(
			"..##.",
			".#...",
			"#....",
			"####.",
			"#...#",
			"#...#",
			".###.",
		),
		'7': glyph5x7(
			"#####",
			"....#",
			"...#.",
			"..#..",
			".#...",
			".#...",
			".#...",
		),
		'8': glyph5x7(
			".###.",
			"#...#",
			"#...#",
			".###.",
			"#...#",
			"#...#",
			".###.",
		),
		'9': glyph5x7(
			".###.",
			"#...#",
			"#...#",
			".####",
			"....#",
			"...#.",
			".##..",
		),
	}
	for r, s := range buildLatinUpper5x7() {
		g[r] = s
	}
	return g
}

func buildLatinUpper5x7() map[rune]*Stencil {
	return map[rune]*Stencil{
		'A': glyph5x7(
			".###.",
			"#...#",
			"#...#",
			"#####",
			"#...#",
			"#...#",
			"#...#",
		),
		'B': glyph5x7(
			"####.",
			"#...#",
			"#...#",
			"####.",
			"#...#",
			"#...#",
			"####.",
		),
		'C': glyph5x7(
			".###.",
			"#...#",
			"#....",
			"#....",
			"#....",
			"#...#",
			".###.",
		),
		'D': glyph5x7(
			"####.",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"####.",
		),
		'E': glyph5x7(
			"#####",
			"#....",
			"#....",
			"####.",
			"#....",
			"#....",
			"#####",
		),
		'F': glyph5x7(
			"#####",
			"#....",
			"#....",
			"####.",
			"#....",
			"#....",
			"#....",
		),
		'G': glyph5x7(
			".###.",
			"#...#",
			"#....",
			"#.###",
			"#...#",
			"#...#",
			".###.",
		),
		'H': glyph5x7(
			"#...#",
			"#...#",
			"#...#",
			"#####",
			"#...#",
			"#...#",
			"#...#",
		),
		'I': glyph5x7(
			".###.",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
			".###.",
		),
		'J': glyph5x7(
			"....#",
			"....#",
			"....#",
			"....#",
			"#...#",
			"#...#",
			".###.",
		),
		'K': glyph5x7(
			"#...#",
			"#..#.",
			"#.#..",
			"##...",
			"#.#..",
			"#..#.",
			"#...#",
		),
		'L': glyph5x7(
			"#....",
			"#....",
			"#....",
			"#....",
			"#....",
			"#....",
			"#####",
		),
		'M': glyph5x7(
			"#...#",
			"##.##",
			"#.#.#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
		),
		'N': glyph5x7(
			"#...#",
			"##..#",
			"#.#.#",
			"#..##",
			"#...#",
			"#...#",
			"#...#",
		),
		'O': glyph5x7(
			".###.",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			".###.",
		),
		'P': glyph5x7(
			"####.",
			"#...#",
			"#...#",
			"####.",
			"#....",
			"#....",
			"#....",
		),
		'Q': glyph5x7(
			".###.",
			"#...#",
			"#...#",
			"#...#",
			"#.#.#",
			"#..#.",
			".##.#",
		),
		'R': glyph5x7(
			"####.",
			"#...#",
			"#...#",
			"####.",
			"#.#..",
			"#..#.",
			"#...#",
		),
		'S': glyph5x7(
			".###.",
			"#...#",
			"#....",
			".###.",
			"....#",
			"#...#",
			".###.",
		),
		'T': glyph5x7(
			"#####",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
		),
		'U': glyph5x7(
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			".###.",
		),
		'V': glyph5x7(
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			"#...#",
			".#.#.",
			"..#..",
		),
		'W': glyph5x7(
			"#...#",
			"#...#",
			"#...#",
			"#.#.#",
			"#.#.#",
			"#.#.#",
			".#.#.",
		),
		'X': glyph5x7(
			"#...#",
			"#...#",
			".#.#.",
			"..#..",
			".#.#.",
			"#...#",
			"#...#",
		),
		'Y': glyph5x7(
			"#...#",
			"#...#",
			".#.#.",
			"..#..",
			"..#..",
			"..#..",
			"..#..",
		),
		'Z': glyph5x7(
			"#####",
			"....#",
			"...#.",
			"..#..",
			".#...",
			"#....",
			"#####",
		),
	}
}
