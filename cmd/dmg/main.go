// Command dmg runs the DMG execution core headlessly: one positional
// ROM path, no presenter attached unless -dump names a directory to
// drop PNG snapshots into.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"golang.org/x/image/draw"

	"github.com/dmg83/dmgcore/dmgcore"
)

var dumpDir = flag.String("dump", "", "directory to write one PNG per presented frame into (debug aid)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dmg [-dump dir] <rom-path>")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	rom, err := dmgcore.LoadROM(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmg: %v\n", err)
		os.Exit(1)
	}

	var presenter dmgcore.Presenter
	if *dumpDir != "" {
		if err := os.MkdirAll(*dumpDir, 0o755); err != nil {
			log.Fatalf("dmg: creating dump dir: %v", err)
		}
		presenter = newFrameDumper(*dumpDir)
	}

	m := dmgcore.NewMachine(rom, presenter)

	var stopping atomic.Bool
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		stopping.Store(true)
	}()

	m.Run(stopping.Load)
	os.Exit(0)
}

// frameDumper writes every presented frame as an upscaled PNG,
// grounded in the teacher's habit (video_chip.go) of bilinear-scaling
// a low-resolution chip buffer before handing it to a display sink.
type frameDumper struct {
	dir   string
	count int
}

func newFrameDumper(dir string) dmgcore.FuncPresenter {
	d := &frameDumper{dir: dir}
	return d.present
}

func (d *frameDumper) present(fb *dmgcore.Framebuffer) {
	const scale = 4
	src := image.NewGray(image.Rect(0, 0, 160, 144))
	for i, shade := range fb {
		src.Pix[i] = shadeToGray(shade)
	}

	dst := image.NewGray(image.Rect(0, 0, 160*scale, 144*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	path := filepath.Join(d.dir, fmt.Sprintf("frame-%06d.png", d.count))
	d.count++

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmg: writing %s: %v\n", path, err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		fmt.Fprintf(os.Stderr, "dmg: encoding %s: %v\n", path, err)
	}
}

func shadeToGray(shade byte) uint8 {
	// Shade 0 is the lightest DMG palette entry, 3 the darkest.
	return uint8(255 - int(shade)*(255/3))
}
