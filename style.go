package cropper

import (
	"image/color"
	"time"

	"github.com/esimov/cropper/geom"
)

// Guidelines describes the grid drawn inside the crop rectangle.
type Guidelines struct {
	Count int // lines per direction
	Color color.NRGBA
	Width float32
}

// Style holds the look and the behaviour settings of the cropper.
// Lengths are in device independent units; Scaled converts them to pixels.
type Style struct {
	BackgroundColor color.NRGBA
	OverlayColor    color.NRGBA
	RectColor       color.NRGBA
	RectStrokeWidth float32

	TouchRad         float32
	Handles          []geom.Point
	HandleLength     float32
	SecondaryHandles bool // draw ticks on the edge handles too

	Guidelines *Guidelines

	Shapes  []Shape
	Aspects []AspectRatio

	AutoZoom         bool
	BringToViewDelay time.Duration
	MinRegionSize    float32
}

// DefaultStyle returns the default cropper style.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		OverlayColor:    color.NRGBA{A: 0x80},
		RectColor:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		RectStrokeWidth: 2,

		TouchRad:         20,
		Handles:          DefaultHandles,
		HandleLength:     14,
		SecondaryHandles: true,

		Guidelines: &Guidelines{
			Count: 2,
			Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb3},
			Width: 0.7,
		},

		Shapes:  DefaultShapes,
		Aspects: DefaultAspects,

		AutoZoom:         true,
		BringToViewDelay: DefaultBringToViewDelay,
		MinRegionSize:    DefaultMinRegionSize,
	}
}

// Scaled returns the style with the lengths multiplied by px, the number
// of pixels per unit.
func (s Style) Scaled(px float32) Style {
	s.RectStrokeWidth *= px
	s.TouchRad *= px
	s.HandleLength *= px
	if s.Guidelines != nil {
		g := *s.Guidelines
		g.Width *= px
		s.Guidelines = &g
	}
	return s
}
