// Package config reads the optional TOML configuration of the cropper tool.
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/esimov/cropper"
	"github.com/esimov/cropper/face"
	"github.com/esimov/cropper/utils"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application configuration.
type Config struct {
	Style  StyleConfig  `toml:"style"`
	Crop   CropConfig   `toml:"crop"`
	Output OutputConfig `toml:"output"`
	Face   FaceConfig   `toml:"face"`
}

// StyleConfig holds the look of the crop view. Colors are hex strings.
type StyleConfig struct {
	Background       string  `toml:"background"`
	Overlay          string  `toml:"overlay"`
	Rect             string  `toml:"rect"`
	RectStrokeWidth  float32 `toml:"rect_stroke_width"`
	TouchRadius      float32 `toml:"touch_radius"`
	HandleLength     float32 `toml:"handle_length"`
	SecondaryHandles bool    `toml:"secondary_handles"`
	Guidelines       int     `toml:"guidelines"`
	GuidelineColor   string  `toml:"guideline_color"`
	GuidelineWidth   float32 `toml:"guideline_width"`
	AutoZoom         bool    `toml:"auto_zoom"`
	BringToViewDelay int     `toml:"bring_to_view_delay_ms"`
}

// CropConfig holds the initial crop settings and the choices offered in the dialog.
type CropConfig struct {
	Shape         string   `toml:"shape"`
	Shapes        []string `toml:"shapes"`
	Aspect        string   `toml:"aspect"`
	Aspects       []string `toml:"aspects"`
	MinRegionSize float32  `toml:"min_region_size"`
}

// OutputConfig holds the settings of the cropped result.
type OutputConfig struct {
	MaxWidth  int  `toml:"max_width"`
	MaxHeight int  `toml:"max_height"`
	Quality   int  `toml:"quality"`
	Lossless  bool `toml:"lossless"`
}

// FaceConfig holds the face detector settings.
type FaceConfig struct {
	Cascade     string  `toml:"cascade"`
	MinSize     int     `toml:"min_size"`
	MaxSize     int     `toml:"max_size"`
	ShiftFactor float64 `toml:"shift_factor"`
	ScaleFactor float64 `toml:"scale_factor"`
	IoU         float64 `toml:"iou"`
	MinQuality  float32 `toml:"min_quality"`
	Margin      float32 `toml:"margin"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Style: StyleConfig{
			Background:       "#101010",
			Overlay:          "#00000080",
			Rect:             "#ffffff",
			RectStrokeWidth:  2,
			TouchRadius:      20,
			HandleLength:     14,
			SecondaryHandles: true,
			Guidelines:       2,
			GuidelineColor:   "#ffffffb3",
			GuidelineWidth:   0.7,
			AutoZoom:         true,
			BringToViewDelay: int(cropper.DefaultBringToViewDelay / time.Millisecond),
		},
		Crop: CropConfig{
			Shape:         "rect",
			Shapes:        []string{"rect", "oval", "roundrect", "star", "triangle"},
			Aspects:       []string{"1:1", "4:3", "3:4", "16:9", "9:16", "3:2"},
			MinRegionSize: cropper.DefaultMinRegionSize,
		},
		Output: OutputConfig{
			MaxWidth:  cropper.DefaultMaxCropSize.X,
			MaxHeight: cropper.DefaultMaxCropSize.Y,
			Quality:   95,
		},
		Face: FaceConfig{
			MinSize:     20,
			ShiftFactor: 0.1,
			ScaleFactor: 1.1,
			IoU:         0.2,
			MinQuality:  5,
			Margin:      0.3,
		},
	}
}

// Load reads the TOML file at path over the default configuration and
// validates the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	c := Default()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for name, hex := range map[string]string{
		"style.background":      c.Style.Background,
		"style.overlay":         c.Style.Overlay,
		"style.rect":            c.Style.Rect,
		"style.guideline_color": c.Style.GuidelineColor,
	} {
		if _, err := utils.HexToRGBA(hex); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
		}
	}
	switch {
	case c.Style.RectStrokeWidth < 0:
		return fmt.Errorf("%w: style.rect_stroke_width must not be negative", ErrInvalid)
	case c.Style.TouchRadius <= 0:
		return fmt.Errorf("%w: style.touch_radius must be positive", ErrInvalid)
	case c.Style.Guidelines < 0:
		return fmt.Errorf("%w: style.guidelines must not be negative", ErrInvalid)
	case c.Style.BringToViewDelay < 0:
		return fmt.Errorf("%w: style.bring_to_view_delay_ms must not be negative", ErrInvalid)
	case c.Crop.MinRegionSize <= 0:
		return fmt.Errorf("%w: crop.min_region_size must be positive", ErrInvalid)
	case c.Output.Quality < 1 || c.Output.Quality > 100:
		return fmt.Errorf("%w: output.quality must be between 1 and 100", ErrInvalid)
	case c.Output.MaxWidth < 0 || c.Output.MaxHeight < 0:
		return fmt.Errorf("%w: output.max_width and output.max_height must not be negative", ErrInvalid)
	case c.Face.ScaleFactor <= 1:
		return fmt.Errorf("%w: face.scale_factor must be greater than 1", ErrInvalid)
	case c.Face.ShiftFactor <= 0 || c.Face.ShiftFactor > 1:
		return fmt.Errorf("%w: face.shift_factor must be between 0 and 1", ErrInvalid)
	case c.Face.IoU < 0 || c.Face.IoU > 1:
		return fmt.Errorf("%w: face.iou must be between 0 and 1", ErrInvalid)
	case c.Face.Margin < 0:
		return fmt.Errorf("%w: face.margin must not be negative", ErrInvalid)
	}

	if c.Crop.Shape != "" {
		if _, err := cropper.ParseShape(c.Crop.Shape); err != nil {
			return fmt.Errorf("%w: crop.shape: %w", ErrInvalid, err)
		}
	}
	for _, s := range c.Crop.Shapes {
		if _, err := cropper.ParseShape(s); err != nil {
			return fmt.Errorf("%w: crop.shapes: %w", ErrInvalid, err)
		}
	}
	if c.Crop.Aspect != "" {
		if _, err := cropper.ParseAspect(c.Crop.Aspect); err != nil {
			return fmt.Errorf("%w: crop.aspect: %w", ErrInvalid, err)
		}
	}
	for _, a := range c.Crop.Aspects {
		if _, err := cropper.ParseAspect(a); err != nil {
			return fmt.Errorf("%w: crop.aspects: %w", ErrInvalid, err)
		}
	}
	return nil
}

// CropperStyle converts the configuration into a cropper style. The
// configuration must be valid.
func (c *Config) CropperStyle() (cropper.Style, error) {
	st := cropper.DefaultStyle()
	var err error
	if st.BackgroundColor, err = utils.HexToRGBA(c.Style.Background); err != nil {
		return st, err
	}
	if st.OverlayColor, err = utils.HexToRGBA(c.Style.Overlay); err != nil {
		return st, err
	}
	if st.RectColor, err = utils.HexToRGBA(c.Style.Rect); err != nil {
		return st, err
	}
	st.RectStrokeWidth = c.Style.RectStrokeWidth
	st.TouchRad = c.Style.TouchRadius
	st.HandleLength = c.Style.HandleLength
	st.SecondaryHandles = c.Style.SecondaryHandles

	st.Guidelines = nil
	if c.Style.Guidelines > 0 {
		gc, err := utils.HexToRGBA(c.Style.GuidelineColor)
		if err != nil {
			return st, err
		}
		st.Guidelines = &cropper.Guidelines{
			Count: c.Style.Guidelines,
			Color: gc,
			Width: c.Style.GuidelineWidth,
		}
	}

	st.AutoZoom = c.Style.AutoZoom
	st.BringToViewDelay = time.Duration(c.Style.BringToViewDelay) * time.Millisecond
	st.MinRegionSize = c.Crop.MinRegionSize

	if len(c.Crop.Shapes) > 0 {
		st.Shapes = st.Shapes[:0:0]
		for _, name := range c.Crop.Shapes {
			s, err := cropper.ParseShape(name)
			if err != nil {
				return st, err
			}
			st.Shapes = append(st.Shapes, s)
		}
	}
	if len(c.Crop.Aspects) > 0 {
		st.Aspects = st.Aspects[:0:0]
		for _, v := range c.Crop.Aspects {
			a, err := cropper.ParseAspect(v)
			if err != nil {
				return st, err
			}
			st.Aspects = append(st.Aspects, a)
		}
	}
	return st, nil
}

// InitEvents returns the events applied to a new crop session: the initial
// shape and aspect ratio.
func (c *Config) InitEvents() ([]cropper.Event, error) {
	var evs []cropper.Event
	if c.Crop.Shape != "" {
		s, err := cropper.ParseShape(c.Crop.Shape)
		if err != nil {
			return nil, err
		}
		evs = append(evs, cropper.SetShape{Shape: s})
	}
	if c.Crop.Aspect != "" {
		a, err := cropper.ParseAspect(c.Crop.Aspect)
		if err != nil {
			return nil, err
		}
		evs = append(evs, cropper.SetAspect{Aspect: a})
	}
	return evs, nil
}

// MaxSize returns the bounding size of the cropped result.
func (c *Config) MaxSize() image.Point {
	return image.Pt(c.Output.MaxWidth, c.Output.MaxHeight)
}

// Detector loads the face detector from the configured cascade file.
func (c *Config) Detector() (*face.Detector, error) {
	if c.Face.Cascade == "" {
		return nil, face.ErrNoCascade
	}
	d, err := face.LoadDetector(c.Face.Cascade)
	if err != nil {
		return nil, err
	}
	d.MinSize = c.Face.MinSize
	d.MaxSize = c.Face.MaxSize
	d.ShiftFactor = c.Face.ShiftFactor
	d.ScaleFactor = c.Face.ScaleFactor
	d.IoU = c.Face.IoU
	d.MinQuality = c.Face.MinQuality
	return d, nil
}
