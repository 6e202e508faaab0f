package imgsrc

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/esimov/cropper/utils"
)

// Extensions lists the supported output file extensions.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// EncodeOptions holds the encoder settings.
type EncodeOptions struct {
	Quality  int  // JPEG and lossy WebP quality, 1-100
	Lossless bool // WebP only
}

// Encode writes the image in the format given by the file extension.
// An empty extension encodes JPEG, the format used for pipes.
func Encode(w io.Writer, img image.Image, ext string, o EncodeOptions) error {
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 95
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(o.Quality))
	case "webp":
		return webp.Encode(w, img, &webp.Options{Lossless: o.Lossless, Quality: float32(o.Quality)})
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(o.Quality))
}

// IsSupported reports whether the path has a supported output extension.
func IsSupported(path string) bool {
	return utils.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}
