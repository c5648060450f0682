// disasm loads a flat binary image into RAM and disassembles a range
// of it to stdout.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/hcallahan/nmos6502/disassemble"
	"github.com/hcallahan/nmos6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "address to start disassembling from")
	offset  = flag.Int("offset", 0x0000, "offset into RAM to load the file at")
	length  = flag.Int("length", 0x0000, "bytes to disassemble past start_pc; 0 means the whole loaded image")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <addr> -offset <addr> -length <n>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	bus, err := memory.NewRAM(1<<16, nil)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	bus.PowerOn()

	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}
	max := 1<<16 - *offset
	if l := len(b); l > max {
		log.Printf("length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}
	for i, v := range b {
		bus.Write(uint16(*offset+i), v)
	}

	lo := uint16(*startPC)
	hi := lo + uint16(len(b)) - 1
	if *length > 0 {
		hi = lo + uint16(*length) - 1
	}

	fmt.Printf("0x%X bytes loaded at offset 0x%04X, disassembling 0x%04X-0x%04X\n", len(b), *offset, lo, hi)
	for _, e := range disassemble.Range(lo, hi, bus) {
		fmt.Println(e.Text)
	}
}
