// monitor is a small SDL2 front end that runs a loaded program and
// renders register and flag state as a grid of colored cells, one
// step per frame. It is a debugging collaborator that sits outside
// the core: it imports cpu only through the public Chip/Step/LoadProgram
// surface and never reaches into instruction internals.
package main

import (
	"flag"
	"image"
	"image/color"
	"io/ioutil"
	"log"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"

	"github.com/hcallahan/nmos6502/cpu"
	"github.com/hcallahan/nmos6502/memory"
)

var (
	program = flag.String("program", "", "path to a flat binary to load and run (first 2 bytes are the load address)")
	scale   = flag.Int("scale", 8, "pixel scale for each register cell")
	cells   = flag.Int("cells", 200, "number of cells to keep in the scrolling history")
)

const rows = 7 // PC-hi, PC-lo, A, X, Y, S, P

// fastImage pokes pixels directly into an SDL surface, avoiding the
// color.Color allocation Surface.Set incurs per call.
type fastImage struct {
	surface *sdl.Surface
	data    []byte
}

func (f *fastImage) Set(x, y int, c color.Color) {
	i := int32(y)*f.surface.Pitch + int32(x)*int32(f.surface.Format.BytesPerPixel)
	r, g, b, a := c.RGBA()
	f.data[i+0] = uint8(b >> 8)
	f.data[i+1] = uint8(g >> 8)
	f.data[i+2] = uint8(r >> 8)
	f.data[i+3] = uint8(a >> 8)
}

func (f *fastImage) ColorModel() color.Model { return f.surface.ColorModel() }
func (f *fastImage) Bounds() image.Rectangle { return f.surface.Bounds() }
func (f *fastImage) At(x, y int) color.Color { return f.surface.At(x, y) }

// byteColor maps a byte's value onto the x/image/colornames palette
// so register swatches are recognizably distinct rather than a raw
// grayscale ramp.
func byteColor(v uint8) color.Color {
	palette := []color.RGBA{
		colornames.Navy, colornames.Blue, colornames.Teal, colornames.Green,
		colornames.Olive, colornames.Gold, colornames.Orange, colornames.Red,
		colornames.Purple, colornames.Maroon, colornames.Gray, colornames.Black,
		colornames.Silver, colornames.White, colornames.Lime, colornames.Aqua,
	}
	return palette[v%uint8(len(palette))]
}

func main() {
	flag.Parse()
	if *program == "" {
		log.Fatalf("-program is required")
	}

	bus, err := memory.NewRAM(1<<16, nil)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	data, err := ioutil.ReadFile(*program)
	if err != nil {
		log.Fatalf("can't read %s: %v", *program, err)
	}

	chip, err := cpu.New(cpu.Def{Variant: cpu.NMOS, Bus: bus})
	if err != nil {
		log.Fatalf("can't initialize cpu: %v", err)
	}
	chip.LoadProgram(data)

	w, h := int32(*cells**scale), int32(rows**scale)

	var window *sdl.Window
	var fi *fastImage
	sdl.Main(func() {
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
			window, err = sdl.CreateWindow("nmos6502 monitor", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			surface, err := window.GetSurface()
			if err != nil {
				log.Fatalf("can't get window surface: %v", err)
			}
			fi = &fastImage{surface: surface, data: surface.Pixels()}
		})
		defer func() {
			sdl.Do(func() {
				window.Destroy()
				sdl.Quit()
			})
		}()

		col := 0
		for {
			_, err := chip.Step()
			if err != nil {
				log.Printf("halted: %v", err)
				break
			}
			if col >= *cells {
				break
			}
			sdl.Do(func() {
				drawColumn(fi, col, chip, *scale)
				window.UpdateSurface()
			})
			col++

			running := true
			sdl.Do(func() {
				for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
					if _, ok := ev.(*sdl.QuitEvent); ok {
						running = false
					}
				}
			})
			if !running {
				break
			}
		}
	})
}

// drawColumn renders one instruction's register snapshot as a
// rows-tall, scale-wide column of solid-color cells.
func drawColumn(fi *fastImage, col int, chip *cpu.Chip, scale int) {
	vals := []uint8{
		uint8(chip.PC >> 8), uint8(chip.PC),
		chip.A, chip.X, chip.Y, chip.S, chip.Bits(),
	}
	x0 := col * scale
	for row, v := range vals {
		c := byteColor(v)
		y0 := row * scale
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				fi.Set(x0+dx, y0+dy, c)
			}
		}
	}
}
