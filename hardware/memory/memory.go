package memory

import (
	"fmt"
	"math/rand/v2"
)

// Memory is the part of the C64 address space that matters to the VIC: the
// 64KiB of DRAM, the 1KiB of 4-bit colour RAM and the two bank select bits
// held by the second CIA. the VIC can only see 16KiB of memory at one time
//
// the character ROM appears to the VIC at 0x1000 to 0x1fff of banks 0 and 2.
// if no ROM image has been attached the window falls through to RAM
type Memory struct {
	RAM      [0x10000]uint8
	ColorRAM [0x400]uint8

	charROM    [0x1000]uint8
	hasCharROM bool

	// the two bank select bits. the stored value is the bank number (0 to
	// 3), not the inverted register value the CPU writes to the CIA
	bank uint8
}

func Create() *Memory {
	return &Memory{}
}

func (mem *Memory) Reset(random bool) {
	if random {
		for i := range mem.RAM {
			mem.RAM[i] = uint8(rand.IntN(256))
		}
		for i := range mem.ColorRAM {
			mem.ColorRAM[i] = uint8(rand.IntN(16))
		}
	} else {
		clear(mem.RAM[:])
		clear(mem.ColorRAM[:])
	}
	mem.bank = 0
}

// AttachCharROM attaches a 4KiB character ROM image
func (mem *Memory) AttachCharROM(d []uint8) error {
	if len(d) != len(mem.charROM) {
		return fmt.Errorf("memory: character ROM should be %d bytes", len(mem.charROM))
	}
	copy(mem.charROM[:], d)
	mem.hasCharROM = true
	return nil
}

// Read implements the bus interface consumed by the VIC. the address is
// fourteen bits and is combined with the bank select bits
func (mem *Memory) Read(address uint16) uint8 {
	address &= 0x3fff

	// banks 0 and 2 image the character ROM over 0x1000 to 0x1fff
	if mem.hasCharROM && mem.bank&0x01 == 0x00 {
		if address >= 0x1000 && address <= 0x1fff {
			return mem.charROM[address&0x0fff]
		}
	}

	return mem.RAM[(uint16(mem.bank)<<14)|address]
}

// ReadColor implements the colour RAM read consumed by the VIC. only the low
// four bits of the returned value are significant
func (mem *Memory) ReadColor(address uint16) uint8 {
	return mem.ColorRAM[address&0x3ff] & 0x0f
}

// Bank returns the current bank select bits
func (mem *Memory) Bank() uint8 {
	return mem.bank
}

// SetBank sets the bank select bits. on the real machine these live in the
// second CIA and can change at any access boundary
func (mem *Memory) SetBank(bank uint8) {
	mem.bank = bank & 0x03
}

// Poke writes a value directly into RAM, bypassing any ROM imaging
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.RAM[address] = data
}

// Peek reads a value directly from RAM, bypassing any ROM imaging
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.RAM[address]
}
