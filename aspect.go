package cropper

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio is a width to height ratio expressed with integers.
type AspectRatio struct {
	X, Y int
}

// DefaultAspects are the aspect ratio presets offered by the crop dialog.
var DefaultAspects = []AspectRatio{{1, 1}, {4, 3}, {3, 4}, {16, 9}, {9, 16}, {3, 2}}

// Ratio returns the width divided by the height.
func (a AspectRatio) Ratio() float32 {
	if a.Y == 0 {
		return 0
	}
	return float32(a.X) / float32(a.Y)
}

func (a AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", a.X, a.Y)
}

// ParseAspect parses an aspect ratio in the "W:H" form.
func ParseAspect(s string) (AspectRatio, error) {
	x, y, ok := strings.Cut(s, ":")
	if !ok {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q, expected W:H", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: sides must be positive", s)
	}
	return AspectRatio{X: w, Y: h}, nil
}
