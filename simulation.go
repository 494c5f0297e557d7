package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/flowfield-shapes/internal/effect"
)

var background = color.RGBA{0x10, 0x10, 0x18, 0xff}

// debugButton is the clickable overlay toggle in the HUD, in screen pixels.
var debugButton = image.Rect(6, 6, 76, 24)

// Simulation struct: adapts the effect to Ebitengine
type Simulation struct {
	Width, Height int

	effect   *effect.Effect
	sliders  *effect.Sliders
	surface  *ebitenSurface
	gridPath string
}

// NewSimulation creates a new simulation instance
func NewSimulation(width, height int, v effect.Variant, rng *rand.Rand) (*Simulation, error) {
	sliders := effect.NewSliders(v)
	e, err := effect.New(float64(width), float64(height), v, sliders, rng)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		Width:    width,
		Height:   height,
		effect:   e,
		sliders:  sliders,
		surface:  &ebitenSurface{},
		gridPath: "grid.json",
	}, nil
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s.handleInput()
	return nil
}

// Draw is called each frame by Ebitengine. The effect advances here rather
// than in Update so that every displayed frame moves the shapes exactly once.
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s.surface.dst = screen
	s.effect.Render(s.surface)
	s.drawHUD(screen)
}

// Layout returns the screen size
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.Width, s.Height
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.effect.ToggleDebug()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if image.Pt(ebiten.CursorPosition()).In(debugButton) {
			s.effect.ToggleDebug()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.effect.Paused = !s.effect.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.effect.Regrid()
		log.Printf("grid resampled")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadGrid()
	}

	changed := false
	changed = nudge(&s.sliders.Count, ebiten.KeyArrowDown, ebiten.KeyArrowUp) || changed
	changed = nudge(&s.sliders.Size, ebiten.KeyArrowLeft, ebiten.KeyArrowRight) || changed
	changed = nudge(&s.sliders.Notch, ebiten.KeyBracketLeft, ebiten.KeyBracketRight) || changed
	changed = nudge(&s.sliders.Points, ebiten.KeyComma, ebiten.KeyPeriod) || changed
	if changed {
		s.effect.InitShapes()
	}
}

// nudge steps a slider down or up when its key was just pressed.
func nudge(sl *effect.Slider, down, up ebiten.Key) bool {
	switch {
	case inpututil.IsKeyJustPressed(down):
		return sl.Nudge(-1)
	case inpututil.IsKeyJustPressed(up):
		return sl.Nudge(1)
	}
	return false
}

// saveGrid saves the field biases to JSON
func (s *Simulation) saveGrid() {
	if err := effect.SaveField(s.gridPath, s.effect.Field); err != nil {
		log.Printf("save grid: %v", err)
		return
	}
	log.Printf("grid saved to %s", s.gridPath)
}

// loadGrid loads the field biases from JSON
func (s *Simulation) loadGrid() {
	if err := effect.LoadField(s.gridPath, s.effect.Field); err != nil {
		log.Printf("load grid: %v", err)
		return
	}
	log.Printf("grid loaded from %s", s.gridPath)
}

func (s *Simulation) drawHUD(screen *ebiten.Image) {
	label := "show grid"
	if s.effect.OverlayVisible() {
		label = "hide grid"
	}
	r := debugButton
	screen.SubImage(r).(*ebiten.Image).Fill(color.RGBA{0x40, 0x40, 0x50, 0xff})
	text.Draw(screen, label, basicfont.Face7x13, r.Min.X+4, r.Max.Y-5, color.White)

	info := fmt.Sprintf("shapes %d  radius %g  inset %.2f  sides %d  fps %.0f",
		s.sliders.ShapeCount(), s.sliders.Radius(), s.sliders.Inset(), s.sliders.Sides(), ebiten.ActualFPS())
	if s.effect.Paused {
		info += "  [paused]"
	}
	text.Draw(screen, info, basicfont.Face7x13, 6, s.Height-8, color.White)
}
