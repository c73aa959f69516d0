// Package game glues the dial renderer and animation driver into an
// ebiten.Game. Ebiten provides the two external collaborators the core
// needs: the sized pixel surface handed to Draw, and the once-per-refresh
// Update callback used as the frame scheduler.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Immernachtreich/speedometer/internal/canvas"
	"github.com/Immernachtreich/speedometer/internal/dial"
	"github.com/Immernachtreich/speedometer/internal/sound"
)

// Game runs a single speedometer animation. It never loops: once the
// needle reaches its rest angle the final frame keeps being drawn until
// the window closes.
type Game struct {
	cfg      dial.Config
	composer *dial.Composer
	anim     *dial.Animation
	canvas   *canvas.Ebiten

	tone  *sound.EngineTone // nil when sound is disabled
	debug bool

	// Ebiten ticks Update before the first Draw; the driver must not
	// advance past the start frame before it has been rendered once.
	drawn bool
}

// New validates cfg and builds the composer and animation driver.
func New(cfg dial.Config, debug bool) (*Game, error) {
	composer, err := dial.NewComposer(cfg)
	if err != nil {
		return nil, err
	}
	anim, err := dial.NewAnimation(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		composer: composer,
		anim:     anim,
		canvas:   canvas.NewEbiten(nil),
		debug:    debug,
	}, nil
}

// AttachTone hooks up the optional engine hum. Must be called before
// ebiten.RunGame.
func (g *Game) AttachTone(t *sound.EngineTone) {
	g.tone = t
}

// Animation exposes the driver, mainly so main can log the terminal state.
func (g *Game) Animation() *dial.Animation {
	return g.anim
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.drawn {
		g.anim.Advance()
		if g.tone != nil {
			g.tone.SetProgress(g.anim.Progress())
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Retarget(screen)

	angle, display := g.anim.Frame()
	g.composer.RenderFrame(g.canvas, angle, display)

	if g.debug {
		msg := fmt.Sprintf("tps %5.1f | angle %6.2f | %s", ebiten.ActualTPS(), angle, g.anim.State())
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}

	g.drawn = true
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
