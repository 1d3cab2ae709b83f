// Command dmgview runs the DMG execution core with a live ebiten
// window. The emulation loop runs on its own goroutine so ebiten's
// own run loop keeps the main goroutine free, shutdown between the
// two coordinated with errgroup.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dmg83/dmgcore/dmgcore"
)

const windowScale = 4

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dmgview <rom-path>")
		os.Exit(1)
	}

	rom, err := dmgcore.LoadROM(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmgview: %v\n", err)
		os.Exit(1)
	}

	g := newGame()
	m := dmgcore.NewMachine(rom, g.presenter())

	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	eg.Go(func() error {
		m.Run(func() bool {
			select {
			case <-ctx.Done():
				return true
			default:
				return false
			}
		})
		return nil
	})

	ebiten.SetWindowSize(160*windowScale, 144*windowScale)
	ebiten.SetWindowTitle("dmg")

	runErr := ebiten.RunGame(g)
	cancel()
	if err := eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "dmgview: emulation loop: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "dmgview: %v\n", runErr)
		os.Exit(1)
	}
}

// game implements ebiten.Game over the latest presented frame, kept
// under a mutex since Present runs on the emulation goroutine while
// Draw runs on ebiten's.
type game struct {
	mu     sync.Mutex
	latest dmgcore.Framebuffer
	window *ebiten.Image
}

func newGame() *game {
	return &game{}
}

func (g *game) presenter() dmgcore.FuncPresenter {
	return func(fb *dmgcore.Framebuffer) {
		g.mu.Lock()
		g.latest = *fb
		g.mu.Unlock()
	}
}

func (g *game) Update() error { return nil }

func (g *game) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(160*windowScale, 144*windowScale)
	}

	g.mu.Lock()
	fb := g.latest
	g.mu.Unlock()

	src := image.NewGray(image.Rect(0, 0, 160, 144))
	for i, shade := range fb {
		src.Pix[i] = 255 - uint8(shade)*(255/3)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 160*windowScale, 144*windowScale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	g.window.WritePixels(dst.Pix)

	screen.DrawImage(g.window, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return 160 * windowScale, 144 * windowScale
}
