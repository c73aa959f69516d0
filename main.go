package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/Immernachtreich/speedometer/internal/dial"
	"github.com/Immernachtreich/speedometer/internal/game"
	"github.com/Immernachtreich/speedometer/internal/sound"
)

var (
	flagWidth  int
	flagHeight int
	flagStep   float64
	flagSound  bool
	flagDebug  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "speedometer",
		Short: "Animated analog speedometer",
		Long: `Speedometer renders an animated analog gauge in a window: a graduated
dial with tick marks, a colored progress arc, a rotating needle and a
numeric readout counting up in sync with the needle sweep.

The animation runs once per launch. Press Esc or Q to quit.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVar(&flagWidth, "width", 500, "Canvas width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 500, "Canvas height in pixels")
	rootCmd.Flags().Float64Var(&flagStep, "step", 1, "Needle advancement per frame in degrees")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a synthesized engine tone that follows the needle")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show a TPS and animation state overlay")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := dial.DefaultConfig()
	cfg.Width = flagWidth
	cfg.Height = flagHeight
	cfg.Step = flagStep
	if err := cfg.Validate(); err != nil {
		// The app is a windowed desktop program; surface the failure as
		// a dialog too, stderr may not be visible.
		_ = zenity.Error(err.Error(), zenity.Title("Speedometer"))
		return err
	}

	g, err := game.New(cfg, flagDebug)
	if err != nil {
		return err
	}

	if flagSound {
		tone := sound.NewEngineTone(sound.DefaultSampleRate)
		if err := sound.Start(tone); err != nil {
			logger.Warn("sound unavailable, continuing without it", "error", err)
		} else {
			g.AttachTone(tone)
		}
	}

	logger.Info("starting animation",
		"width", cfg.Width, "height", cfg.Height,
		"step", cfg.Step, "sound", flagSound)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Speedometer")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	logger.Info("window closed",
		"state", g.Animation().State().String(),
		"angle", g.Animation().Angle())
	return nil
}
