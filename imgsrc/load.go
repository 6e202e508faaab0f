package imgsrc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/cropper/utils"
	"github.com/h2non/filetype"
	"golang.org/x/term"

	// Additional decoders, jpeg, png, gif, bmp and tiff come with imaging.
	_ "golang.org/x/image/webp"
)

// PipeName is the path reading the image from the standard input.
const PipeName = "-"

// ErrUnsupportedFormat is returned for input which is not a supported image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes an image from a local file, an URL or, for PipeName, from a stdin pipe.
func Load(ctx context.Context, path string) (*ImageSource, error) {
	switch {
	case path == PipeName:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return Decode(os.Stdin)
	case utils.IsValidUrl(path):
		f, err := utils.DownloadImage(ctx, path)
		if f != nil {
			defer os.Remove(f.Name())
			defer f.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load the source image: %w", err)
		}
		return Decode(f)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		defer f.Close()
		return Decode(f)
	}
}

// Decode reads an image, applying the EXIF orientation if present.
func Decode(r io.Reader) (*ImageSource, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(261)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	if !filetype.IsImage(head) {
		return nil, ErrUnsupportedFormat
	}
	img, err := imaging.Decode(br, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the image: %w", err)
	}
	return NewImageSource(img), nil
}
