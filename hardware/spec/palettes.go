package spec

import (
	"fmt"
)

// PaletteID selects one of the colour schemes commonly used by C64 emulators
// over the years. colour values are taken from the respective emulators and
// from Pepto's measured palette
type PaletteID int

const (
	CCS64 PaletteID = iota
	VICE
	Frodo
	PC64
	C64S
	ALEC64
	WIN64
	C64Alive
	GoDot
	C64Sally
	Pepto
	Grayscale
	numPalettes
)

func (id PaletteID) String() string {
	switch id {
	case CCS64:
		return "CCS64"
	case VICE:
		return "VICE"
	case Frodo:
		return "Frodo"
	case PC64:
		return "PC64"
	case C64S:
		return "C64S"
	case ALEC64:
		return "ALEC64"
	case WIN64:
		return "WIN64"
	case C64Alive:
		return "C64Alive"
	case GoDot:
		return "GoDot"
	case C64Sally:
		return "C64Sally"
	case Pepto:
		return "Pepto"
	case Grayscale:
		return "Grayscale"
	}
	return "unknown"
}

// each palette is sixteen RGB triplets, in VIC colour order: black, white,
// red, cyan, purple, green, blue, yellow, orange, brown, light red, dark
// grey, mid grey, light green, light blue, light grey
var palettes = [numPalettes][16]uint32{
	CCS64: {
		0x101010, 0xffffff, 0xe04040, 0x60ffff,
		0xe060e0, 0x40e040, 0x4040e0, 0xffff40,
		0xe0a040, 0x9c7448, 0xffa0a0, 0x545454,
		0x888888, 0xa0ffa0, 0xa0a0ff, 0xc0c0c0,
	},
	VICE: {
		0x000000, 0xfdfefc, 0xbe1a24, 0x30e6c6,
		0xb41ae2, 0x1fd21e, 0x211bae, 0xdff60a,
		0xb84104, 0x6a3304, 0xfe4a57, 0x424540,
		0x70746f, 0x59fe59, 0x5f53fe, 0xa4a7a2,
	},
	Frodo: {
		0x000000, 0xffffff, 0xcc0000, 0x00ffcc,
		0xff00ff, 0x00cc00, 0x0000cc, 0xffff00,
		0xff8800, 0x884400, 0xff8888, 0x444444,
		0x888888, 0x88ff88, 0x8888ff, 0xcccccc,
	},
	PC64: {
		0x212121, 0xffffff, 0xb52121, 0x73ffff,
		0xff21ff, 0x21ff21, 0x2121b5, 0xffff21,
		0xb57321, 0x944221, 0xff7373, 0x737373,
		0x949494, 0x73ff73, 0x7373ff, 0xb5b5b5,
	},
	C64S: {
		0x000000, 0xfcfcfc, 0xa80000, 0x54fcfc,
		0xa800a8, 0x00a800, 0x0000a8, 0xfcfc00,
		0xa85400, 0x802c00, 0xfc5454, 0x545454,
		0x808080, 0x54fc54, 0x5454fc, 0xa8a8a8,
	},
	ALEC64: {
		0x000000, 0xffffff, 0x891919, 0x4fd5d5,
		0xa71ea7, 0x24a624, 0x1d1dae, 0xffff4e,
		0xb06a1c, 0x6e4509, 0xe08a8a, 0x404040,
		0x6c6c6c, 0x5fd35f, 0x5f5fd3, 0x989898,
	},
	WIN64: {
		0x000000, 0xffffff, 0x800000, 0x00ffff,
		0xff00ff, 0x008000, 0x000080, 0xffff00,
		0xff8000, 0x804000, 0xff8080, 0x404040,
		0x808080, 0x00ff00, 0x0080ff, 0xc0c0c0,
	},
	C64Alive: {
		0x000000, 0xf0f0f0, 0x8f2731, 0x5fd8cb,
		0x92329c, 0x4bab40, 0x3531a4, 0xcfd343,
		0x985120, 0x5a3800, 0xc2625c, 0x3c3c3c,
		0x707070, 0x9eeb92, 0x7a74e0, 0xababab,
	},
	GoDot: {
		0x000000, 0xffffff, 0x880000, 0xaaffee,
		0xcc44cc, 0x00cc55, 0x0000aa, 0xeeee77,
		0xdd8855, 0x664400, 0xff7777, 0x333333,
		0x777777, 0xaaff66, 0x0088ff, 0xbbbbbb,
	},
	C64Sally: {
		0x000000, 0xf8f8f8, 0x9f4343, 0x74f1e2,
		0xa855ad, 0x60b15e, 0x4a44bd, 0xf3f388,
		0xb37425, 0x73531c, 0xd38a8a, 0x4b4b4b,
		0x7a7a7a, 0xaff6ad, 0x9a94e9, 0xb8b8b8,
	},
	Pepto: {
		0x000000, 0xffffff, 0x68372b, 0x70a4b2,
		0x6f3d86, 0x588d43, 0x352879, 0xb8c76f,
		0x6f4f25, 0x433900, 0x9a6759, 0x444444,
		0x6c6c6c, 0x9ad284, 0x6c5eb5, 0x959595,
	},
	Grayscale: {
		0x000000, 0xffffff, 0x4c4c4c, 0xbbbbbb,
		0x6a6a6a, 0x8d8d8d, 0x3f3f3f, 0xd5d5d5,
		0x686868, 0x484848, 0x848484, 0x444444,
		0x6c6c6c, 0xc2c2c2, 0x868686, 0x959595,
	},
}

// Palette returns the sixteen colour entries of the specified scheme as RGBA
// values in little-endian byte order (R in the lowest byte)
func Palette(id PaletteID) ([16]uint32, error) {
	var p [16]uint32

	if id < 0 || id >= numPalettes {
		return p, fmt.Errorf("palette: unknown id (%d)", id)
	}

	for i, c := range palettes[id] {
		r := (c >> 16) & 0xff
		g := (c >> 8) & 0xff
		b := c & 0xff
		p[i] = 0xff000000 | (b << 16) | (g << 8) | r
	}

	return p, nil
}
