package imgsrc

import "context"

// Loader opens a Source on a background goroutine each time different params
// are requested. A new request cancels the previous one, and only the result
// of the latest request is kept. Results are handed back through post, which
// must run the function on the goroutine calling the Loader methods.
type Loader struct {
	src  Source
	post func(func())

	requested DecodeParams
	cancel    context.CancelFunc
	gen       int

	current *Decoded
	loaded  DecodeParams
	err     error
}

// NewLoader returns a loader for src.
func NewLoader(src Source, post func(func())) *Loader {
	return &Loader{src: src, post: post}
}

// Request asks for the image decoded with p. It does nothing when p is
// already loaded or being loaded, or when loading p already failed.
func (l *Loader) Request(p DecodeParams) {
	if (l.pending() || l.err != nil) && l.requested == p {
		return
	}
	if l.current != nil && l.loaded == p {
		l.Close()
		return
	}
	l.stop()

	ctx, cancel := context.WithCancel(context.Background())
	l.requested, l.cancel = p, cancel
	l.gen++
	gen := l.gen

	go func() {
		d, err := l.src.Open(ctx, p)
		if ctx.Err() != nil {
			return
		}
		l.post(func() {
			if gen != l.gen {
				return
			}
			l.stop()
			if err != nil {
				l.err = err
				return
			}
			l.current, l.loaded, l.err = d, p, nil
		})
	}()
}

// Image returns the latest loaded image, or nil before the first load completes.
func (l *Loader) Image() *Decoded {
	return l.current
}

// Err returns the error of the latest failed request.
func (l *Loader) Err() error {
	return l.err
}

// Close cancels the running request.
func (l *Loader) Close() {
	l.stop()
	l.gen++
}

func (l *Loader) pending() bool {
	return l.cancel != nil
}

func (l *Loader) stop() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
