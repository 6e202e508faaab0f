package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/esimov/cropper/imgsrc"
	"github.com/esimov/cropper/raster"
	"golang.org/x/term"
)

// checkOutput validates the destination before the crop window is opened.
func checkOutput(out string) error {
	if out == imgsrc.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return nil
	}
	if !imgsrc.IsSupported(out) {
		return fmt.Errorf("%v file type not supported", filepath.Ext(out))
	}
	return nil
}

// openOutput converts the destination path to a writable file.
func openOutput(out string) (io.WriteCloser, error) {
	if out == imgsrc.PipeName {
		return os.Stdout, nil
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

// writeResult encodes the cropped image in the format of the destination extension.
func writeResult(out string, img image.Image, o imgsrc.EncodeOptions) error {
	dst, err := openOutput(out)
	if err != nil {
		return err
	}
	ext := ""
	if out != imgsrc.PipeName {
		ext = filepath.Ext(out)
	}
	if err := imgsrc.Encode(dst, img, ext, o); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// writeSnapshot renders the captured crop view into a PNG file.
func writeSnapshot(path string, s snapshotFrame) error {
	dst := raster.NewFrameImage(s.frame)
	raster.Draw(dst, s.frame, s.img)
	return writeResult(path, dst, imgsrc.EncodeOptions{})
}
