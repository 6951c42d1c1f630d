package clocks

const Mhz = 1000000

// the VIC produces eight pixels for every system clock cycle. the dot clock
// is therefore eight times the system clock
const PixelsPerCycle = 8

const (
	PAL_C64  = 0.985248 * Mhz
	NTSC_C64 = 1.022727 * Mhz
)

const (
	PAL_Dot  = PAL_C64 * PixelsPerCycle
	NTSC_Dot = NTSC_C64 * PixelsPerCycle
)
