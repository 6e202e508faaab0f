package cropper

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/esimov/cropper/imgsrc"
)

var (
	// ErrLoadingFailed is returned when the image could not be opened;
	// the crop session is never started.
	ErrLoadingFailed = errors.New("could not load the image")
	// ErrSavingFailed is returned when the cropped result could not be created.
	ErrSavingFailed = errors.New("could not create the cropped image")
	// ErrCancelled is returned when the user rejected the crop or the picker.
	ErrCancelled = errors.New("crop cancelled")
)

// Loading is the progress status of a crop request.
type Loading int

const (
	Idle Loading = iota
	PreparingImage
	SavingResult
)

func (l Loading) String() string {
	switch l {
	case PreparingImage:
		return "preparing image"
	case SavingResult:
		return "saving result"
	}
	return "idle"
}

// ImageCropper drives a crop request: it opens the image, runs a crop
// session and extracts the result once the session is accepted.
//
// The session and the status belong to the UI loop. Crop runs on its own
// goroutine and reaches the UI loop through the post function, which must
// queue the given function for execution on that loop.
type ImageCropper struct {
	post    func(func())
	session *Session
	status  Loading
}

// NewImageCropper returns a cropper posting its state changes through post.
func NewImageCropper(post func(func())) *ImageCropper {
	return &ImageCropper{post: post}
}

// Session returns the running crop session, or nil. UI loop only.
func (c *ImageCropper) Session() *Session {
	return c.session
}

// Status returns the loading status. UI loop only.
func (c *ImageCropper) Status() Loading {
	return c.status
}

// Crop opens an image with open, waits for the user to accept or reject the
// crop session and returns the cropped image, fitted into maxSize. The init
// events are dispatched when the session starts. Crop must not be called
// again before it returns.
func (c *ImageCropper) Crop(
	ctx context.Context,
	maxSize image.Point,
	open func(context.Context) (imgsrc.Source, error),
	init []Event,
	opts ...SessionOption,
) (*image.NRGBA, error) {
	c.post(func() {
		c.session = nil
		c.status = PreparingImage
	})
	src, err := open(ctx)
	if err != nil {
		c.setStatus(Idle)
		if errors.Is(err, ErrCancelled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadingFailed, err)
	}

	started := make(chan *Session, 1)
	c.post(func() {
		if ctx.Err() != nil {
			return
		}
		s := NewSession(src, opts...)
		for _, ev := range init {
			s.Dispatch(ev)
		}
		c.session = s
		c.status = Idle
		started <- s
	})

	var s *Session
	select {
	case s = <-started:
	case <-ctx.Done():
		// Posted functions run in order: a session started meanwhile is
		// already in the channel.
		c.post(func() {
			select {
			case s := <-started:
				s.Dispatch(Finish{Accept: false})
				if c.session == s {
					c.session = nil
				}
			default:
			}
			c.status = Idle
		})
		return nil, ctx.Err()
	}

	select {
	case <-s.Done():
	case <-ctx.Done():
		c.post(func() {
			s.Dispatch(Finish{Accept: false})
			c.session = nil
		})
		return nil, ctx.Err()
	}

	final := make(chan State, 1)
	c.post(func() {
		final <- s.State()
		c.session = nil
		c.status = SavingResult
	})
	var st State
	select {
	case st = <-final:
	case <-ctx.Done():
		c.setStatus(Idle)
		return nil, ctx.Err()
	}
	defer c.setStatus(Idle)

	if st.Accepted != Accepted {
		return nil, ErrCancelled
	}
	img, err := CreateResult(ctx, src, st, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingFailed, err)
	}
	return img, nil
}

func (c *ImageCropper) setStatus(l Loading) {
	c.post(func() {
		c.status = l
	})
}
