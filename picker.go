package cropper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Picker lets the user choose the image to crop. It returns ErrCancelled
// when the user dismisses the choice.
type Picker interface {
	Pick(ctx context.Context) (string, error)
}

// StaticPicker always picks the same path.
type StaticPicker string

// Pick returns the path, or ErrCancelled for an empty one.
func (p StaticPicker) Pick(ctx context.Context) (string, error) {
	if p == "" {
		return "", ErrCancelled
	}
	return string(p), ctx.Err()
}

// PromptPicker asks for a path or URL on a line based terminal.
type PromptPicker struct {
	In  io.Reader
	Out io.Writer
}

// Pick prints a prompt and reads one line. An empty line cancels the choice.
func (p PromptPicker) Pick(ctx context.Context) (string, error) {
	fmt.Fprint(p.Out, "Image path or URL (empty to cancel): ")

	line := make(chan string, 1)
	go func() {
		s, _ := bufio.NewReader(p.In).ReadString('\n')
		line <- strings.TrimSpace(s)
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case s := <-line:
		if s == "" {
			return "", ErrCancelled
		}
		return s, nil
	}
}
