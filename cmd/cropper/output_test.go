package main

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/cropper"
	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOutput(t *testing.T) {
	assert.NoError(t, checkOutput("out.png"))
	assert.NoError(t, checkOutput("out.WEBP"))
	assert.Error(t, checkOutput("out.txt"))
}

func TestWriteResult(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for _, name := range []string{"out.png", "out.jpg", "out.webp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, writeResult(path, img, imgsrc.EncodeOptions{Quality: 90}))

			src, err := imgsrc.Load(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(8, 6), src.Size())
		})
	}

	err := writeResult(filepath.Join(t.TempDir(), "missing", "out.png"), img, imgsrc.EncodeOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteSnapshot(t *testing.T) {
	s := cropper.Reduce(cropper.NewState(geom.Sz(40, 20)), cropper.SetRegion{Region: geom.R(10, 5, 30, 15)})
	f := cropper.Render(s, cropper.ViewTransform{Scale: 1}, geom.R(0, 0, 40, 20), cropper.DefaultStyle())

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, writeSnapshot(path, snapshotFrame{frame: f}))

	src, err := imgsrc.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), src.Size())
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}, src.Image().NRGBAAt(20, 10))
}
