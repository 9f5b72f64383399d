package quill

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kelseyhightower/envconfig"
)

// ErrNotEbitenBackend is returned by Run when the stage draws through a
// backend other than *EbitenBackend.
var ErrNotEbitenBackend = errors.New("quill: Run requires an *EbitenBackend")

// RunConfig configures the window opened by Run. Fields can be loaded from
// the environment with LoadRunConfig.
type RunConfig struct {
	Title      string `envconfig:"TITLE" default:"quill"`
	Width      int    `envconfig:"WIDTH" default:"640"`
	Height     int    `envconfig:"HEIGHT" default:"480"`
	ClearColor Color  `envconfig:"CLEAR_COLOR" default:"#ffffff"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`

	// OnUpdate runs once per tick before input is processed. Returning an
	// error stops the loop.
	OnUpdate func() error `ignored:"true"`
}

// LoadRunConfig fills a RunConfig from environment variables named
// PREFIX_TITLE, PREFIX_WIDTH, PREFIX_HEIGHT, PREFIX_CLEAR_COLOR and
// PREFIX_DEBUG, falling back to the defaults above.
func LoadRunConfig(prefix string) (RunConfig, error) {
	var cfg RunConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("load run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Decode lets envconfig parse colors with ParseColor.
func (c *Color) Decode(value string) error {
	parsed, err := ParseColor(value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Run opens a window and drives the stage until the window closes or
// OnUpdate returns an error. The stage must use an *EbitenBackend.
func Run(stage *Stage, cfg RunConfig) error {
	backend, ok := stage.Backend().(*EbitenBackend)
	if !ok {
		return ErrNotEbitenBackend
	}
	stage.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{stage: stage, backend: backend, cfg: cfg})
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage   *Stage
	backend *EbitenBackend
	cfg     RunConfig
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	g.stage.ProcessInput()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.cfg.ClearColor
	screen.Fill(color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)})
	g.backend.SetScreen(screen)
	g.stage.Update()
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
