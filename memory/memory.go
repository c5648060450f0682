// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated has specific mappings (including shadowed
// regions) this is defined as an interface.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bus defines the contract the CPU requires from its memory collaborator.
// Both operations are total over the full 16-bit address space.
type Bus interface {
	// Read returns the data byte stored at addr. readOnly is set when the
	// caller (the disassembler) is peeking rather than executing; a bus
	// backing memory-mapped devices with side-effecting reads must not
	// mutate state when readOnly is true.
	Read(addr uint16, readOnly bool) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
	// Parent holds a reference (if non-nil) to the next level memory controller. A chain
	// of these can be created in order to find the top one and be able to query items
	// such as the databus state (from the last value to go over it). Some implementations
	// depend on transient databus state due to side effects.
	Parent() Bus
	// DatabusVal returns the last value seen to go across on the data bus.
	DatabusVal() uint8
}

// LatestDatabusVal hunts up a chain of Bus implementations until it finds the outermost one and
// return the DatabusVal from it.
func LatestDatabusVal(b Bus) uint8 {
	if b.Parent() != nil {
		return LatestDatabusVal(b.Parent())
	}
	return b.DatabusVal()
}

// ram implements a standard R/W interface to an address space for 8 bit systems.
// If this is mapped into a larger memory map it's up to a parent Bus to properly mask addr
// before calling Read/Write.
type ram struct {
	mem        []uint8
	parent     Bus
	databusVal uint8
}

// NewRAM creates a R/W RAM bank of the given size. Size must be a power of 2.
// If this is smaller than 64k (uint16 max) aliasing will occur on Read/Write.
func NewRAM(size int, parent Bus) (Bus, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	b := &ram{
		parent: parent,
	}
	// Go ahead and completely preallocate this now.
	b.mem = make([]uint8, size)
	return b, nil
}

// Read implements Bus. Address is clipped based on length of the ram buffer.
func (r *ram) Read(addr uint16, readOnly bool) uint8 {
	// Mask addr to fit
	addr &= uint16(len(r.mem) - 1)
	val := r.mem[addr]
	if !readOnly {
		r.databusVal = val
	}
	return val
}

// Write implements Bus. Address is clipped based on length of the ram buffer.
func (r *ram) Write(addr uint16, val uint8) {
	// Mask addr to fit
	addr &= uint16(len(r.mem) - 1)
	r.databusVal = val
	r.mem[addr] = val
}

// PowerOn implements Bus and randomizes the RAM.
func (r *ram) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}

// Parent implements Bus, returning a possible parent bus.
func (r *ram) Parent() Bus {
	return r.parent
}

// DatabusVal returns the most recent seen databus item.
func (r *ram) DatabusVal() uint8 {
	return r.databusVal
}
