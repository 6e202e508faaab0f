// Package face locates faces in an image with the pigo cascade classifier.
// The detected faces are used to propose an initial crop region.
package face

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/esimov/cropper/utils"
	pigo "github.com/esimov/pigo/core"
)

// ErrNoCascade is returned when the detector is created without cascade data.
var ErrNoCascade = errors.New("no cascade data")

// Detector runs the face classifier over an image.
type Detector struct {
	MinSize     int     // minimum face size in pixels
	MaxSize     int     // maximum face size in pixels, 0 for the image size
	ShiftFactor float64 // sliding window step relative to the window size
	ScaleFactor float64 // window scale step
	IoU         float64 // overlap threshold for clustering detections
	MinQuality  float32 // detections scoring lower are dropped
	Angle       float64 // in-plane rotation of the faces, in turns

	classifier *pigo.Pigo
}

// NewDetector unpacks the binary cascade file.
func NewDetector(cascade []byte) (*Detector, error) {
	if len(cascade) == 0 {
		return nil, ErrNoCascade
	}
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("error unpacking the cascade file: %w", err)
	}
	return &Detector{
		MinSize:     20,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		IoU:         0.2,
		MinQuality:  5.0,
		classifier:  classifier,
	}, nil
}

// LoadDetector reads the cascade file from path.
func LoadDetector(path string) (*Detector, error) {
	cascade, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read the cascade file: %w", err)
	}
	return NewDetector(cascade)
}

// Detect returns the bounding boxes of the faces found in img, in the
// coordinates of img.
func (d *Detector) Detect(img image.Image) []image.Rectangle {
	b := img.Bounds()
	cols, rows := b.Dx(), b.Dy()
	if cols == 0 || rows == 0 {
		return nil
	}
	maxSize := d.MaxSize
	if maxSize <= 0 {
		maxSize = utils.Max(cols, rows)
	}

	params := pigo.CascadeParams{
		MinSize:     d.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: d.ShiftFactor,
		ScaleFactor: d.ScaleFactor,

		ImageParams: pigo.ImageParams{
			Pixels: grayscale(img),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	// The result contains quadruplets representing the row, column, scale
	// and detection score.
	dets := d.classifier.RunCascade(params, d.Angle)
	dets = d.classifier.ClusterDetections(dets, d.IoU)

	var faces []image.Rectangle
	for _, det := range dets {
		if det.Q < d.MinQuality {
			continue
		}
		r := det.Scale / 2
		faces = append(faces, image.Rect(
			det.Col-r, det.Row-r, det.Col+r, det.Row+r,
		).Add(b.Min).Intersect(b))
	}
	return faces
}
