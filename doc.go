/*
Package cropper is an interactive image cropping engine. It maps pointer input
to a crop region over an image that can be rotated, flipped, panned and zoomed,
and renders the result as a list of draw commands consumed by a gio widget
or by a software rasterizer.

The engine is built around a pure state machine: every user action is an Event
reduced into a new State by Reduce. A Session owns the state for one image,
notifies subscribers about the changes and signals once when the crop is accepted
or rejected. The ImageCropper type drives the whole flow, from opening the image
to extracting the cropped pixels.

The package provides a command line interface too. To check the supported flags type:

	$ cropper --help

In case you wish to integrate the API in a self constructed environment here is a simple example
hosting the crop session in a gio window:

	package main

	import (
		"context"
		"log"

		"gioui.org/app"
		"github.com/esimov/cropper"
		"github.com/esimov/cropper/gui"
		"github.com/esimov/cropper/imgsrc"
	)

	func main() {
		src, err := imgsrc.Load(context.Background(), "input.jpg")
		if err != nil {
			log.Fatal(err)
		}
		w := gui.NewWindow("Crop", src.Size(), cropper.DefaultStyle())
		c := cropper.NewImageCropper(w.Post)

		go w.Run(c)
		go func() {
			defer w.Close()
			img, err := c.Crop(context.Background(), cropper.DefaultMaxCropSize,
				func(context.Context) (imgsrc.Source, error) { return src, nil }, nil)
			if err != nil {
				log.Printf("Error cropping image: %v", err)
				return
			}
			_ = img // encode the result with imgsrc.Encode
		}()
		app.Main()
	}
*/
package cropper
