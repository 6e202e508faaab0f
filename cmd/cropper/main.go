package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/cropper"
	"github.com/esimov/cropper/config"
	"github.com/esimov/cropper/face"
	"github.com/esimov/cropper/gui"
	"github.com/esimov/cropper/imgsrc"
	"github.com/esimov/cropper/utils"
)

const HelpBanner = `
┌─┐┬─┐┌─┐┌─┐┌─┐┌─┐┬─┐
│  ├┬┘│ │├─┘├─┘├┤ ├┬┘
└─┘┴└─└─┘┴  ┴  └─┘┴└─

Interactive image cropper.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source image: path, URL or - for stdin (asked for when empty)")
	destination = flag.String("out", imgsrc.PipeName, "Destination image: path or - for stdout")
	configFile  = flag.String("config", "", "TOML configuration file")
	maxSize     = flag.Int("max", 0, "Maximum width and height of the result (0 keeps the configured size)")
	shape       = flag.String("shape", "", "Initial crop shape: rect, oval, roundrect, star or triangle")
	aspect      = flag.String("aspect", "", "Initial aspect ratio, e.g. 16:9")
	faceDetect  = flag.Bool("face", false, "Move the crop region over the detected faces")
	cascade     = flag.String("cc", "", "Cascade classifier")
	quality     = flag.Int("quality", 0, "JPEG and WebP quality (0 keeps the configured quality)")
	lossless    = flag.Bool("lossless", false, "Lossless WebP output")
	snapshot    = flag.String("snapshot", "", "Save a PNG snapshot of the crop view when the session ends")
)

// snapshotFrame is the crop view captured when the session ends.
type snapshotFrame struct {
	frame cropper.Frame
	img   *imgsrc.Decoded
}

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage), err)
	}
	style, err := cfg.CropperStyle()
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid style: %v", utils.ErrorMessage), err)
	}
	initEvents, err := cfg.InitEvents()
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid crop settings: %v", utils.ErrorMessage), err)
	}

	var detector *face.Detector
	if *faceDetect {
		if len(cfg.Face.Cascade) == 0 {
			log.Fatalf(utils.DecorateText("Please specify a face classifier in case you are using the -face flag!\n", utils.ErrorMessage))
		}
		if detector, err = cfg.Detector(); err != nil {
			log.Fatalf(utils.DecorateText("Unable to load the face classifier: %v", utils.ErrorMessage), err)
		}
	}

	if err := checkOutput(*destination); err != nil {
		log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
	}

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("✂ CROPPER", utils.StatusMessage),
		utils.DecorateText("⇢ preparing the image...", utils.DefaultMessage),
	), time.Millisecond*80, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var picker cropper.Picker = cropper.StaticPicker(*source)
	if *source == "" {
		picker = cropper.PromptPicker{In: os.Stdin, Out: os.Stderr}
	}
	path, err := picker.Pick(ctx)
	if err != nil {
		if errors.Is(err, cropper.ErrCancelled) {
			os.Exit(0)
		}
		log.Fatalf(utils.DecorateText("No image selected: %v", utils.ErrorMessage), err)
	}

	spinner.Start()
	src, err := imgsrc.Load(ctx, path)
	if err != nil {
		spinner.StopMsg = utils.DecorateText("✘ failed to load the image\n", utils.ErrorMessage)
		spinner.Stop()
		log.Fatalf(
			utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	spinner.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("✂ CROPPER", utils.StatusMessage),
		utils.DecorateText("⇢ crop the image and press Enter to save ✔", utils.DefaultMessage),
	)
	spinner.Stop()

	w := gui.NewWindow("Image cropper", src.Size(), style)
	w.Dialog.Detector = detector
	w.Dialog.AutoFace = detector != nil
	w.Dialog.FaceMargin = cfg.Face.Margin

	snap := make(chan snapshotFrame, 1)
	opts := []cropper.SessionOption{
		cropper.WithMinRegionSize(style.MinRegionSize),
		cropper.OnDone(func(bool) {
			select {
			case snap <- snapshotFrame{w.Dialog.Cropper.Frame(), w.Dialog.Cropper.Image()}:
			default:
			}
		}),
	}

	ic := cropper.NewImageCropper(w.Post)
	done := make(chan int, 1)

	go func() {
		now := time.Now()
		img, err := ic.Crop(ctx, cfg.MaxSize(), func(context.Context) (imgsrc.Source, error) {
			return src, nil
		}, initEvents, opts...)
		defer w.Close()

		if *snapshot != "" {
			select {
			case s := <-snap:
				if err := writeSnapshot(*snapshot, s); err != nil {
					log.Printf(utils.DecorateText("Unable to save the snapshot: %v", utils.ErrorMessage), err)
				}
			default:
			}
		}

		switch {
		case errors.Is(err, cropper.ErrCancelled), errors.Is(err, context.Canceled):
			fmt.Fprintln(os.Stderr, utils.DecorateText("Crop cancelled.", utils.DefaultMessage))
			done <- 0
			return
		case err != nil:
			log.Printf(utils.DecorateText("Error cropping the image: %v", utils.ErrorMessage), err)
			done <- 1
			return
		}

		spinner.SetMessage(fmt.Sprintf("%s %s",
			utils.DecorateText("✂ CROPPER", utils.StatusMessage),
			utils.DecorateText("⇢ saving the cropped image...", utils.DefaultMessage),
		))
		spinner.StopMsg = ""
		spinner.Start()
		err = writeResult(*destination, img, imgsrc.EncodeOptions{Quality: cfg.Output.Quality, Lossless: cfg.Output.Lossless})
		spinner.Stop()
		printStatus(*destination, img.Bounds().Size(), time.Since(now), err)
		if err != nil {
			done <- 1
			return
		}
		done <- 0
	}()

	go func() {
		if err := w.Run(ic); err != nil {
			log.Printf(utils.DecorateText("Window error: %v", utils.ErrorMessage), err)
		}
		spinner.RestoreCursor()
		os.Exit(<-done)
	}()

	app.Main()
}

// loadConfig reads the configuration file, if any, and applies the flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}
	if *maxSize > 0 {
		cfg.Output.MaxWidth, cfg.Output.MaxHeight = *maxSize, *maxSize
	}
	if *shape != "" {
		cfg.Crop.Shape = *shape
	}
	if *aspect != "" {
		cfg.Crop.Aspect = *aspect
	}
	if *quality > 0 {
		cfg.Output.Quality = *quality
	}
	if *lossless {
		cfg.Output.Lossless = true
	}
	if *cascade != "" {
		cfg.Face.Cascade = *cascade
	}
	return cfg, cfg.Validate()
}

// printStatus displays the relevant information about the saved image.
func printStatus(fname string, size image.Point, d time.Duration, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError saving the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		return
	}
	if fname != imgsrc.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe %dx%d cropped image has been saved as: %s %s\n",
			size.X, size.Y,
			utils.DecorateText(fname, utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(d), utils.SuccessMessage))
}
