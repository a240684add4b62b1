package capture

import (
	"fmt"
	"image"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Recorder pipes raw RGBA frames into FFmpeg and encodes them to a video
// file. Frames must arrive at the size the recorder was created with.
type Recorder struct {
	width     int
	height    int
	frameSize int
	pipe      *io.PipeWriter
	done      chan error
}

// NewRecorder starts an FFmpeg process encoding to path. Frames written with
// WriteFrame become video frames at the given rate.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("capture: invalid recording size %dx%d", width, height)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("capture: invalid frame rate %d", fps)
	}

	pipeReader, pipeWriter := io.Pipe()

	cmd := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}).
		Output(path, ffmpeg.KwArgs{
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"preset":  "medium",
		}).
		OverWriteOutput().
		WithInput(pipeReader).
		ErrorToStdOut()

	r := &Recorder{
		width:     width,
		height:    height,
		frameSize: width * height * 4,
		pipe:      pipeWriter,
		done:      make(chan error, 1),
	}
	go func() {
		r.done <- cmd.Run()
	}()
	return r, nil
}

// WriteFrame encodes one frame. The image size must match the recorder.
func (r *Recorder) WriteFrame(img *image.RGBA) error {
	bounds := img.Bounds()
	if bounds.Dx() != r.width || bounds.Dy() != r.height {
		return fmt.Errorf("capture: frame is %dx%d, recording is %dx%d",
			bounds.Dx(), bounds.Dy(), r.width, r.height)
	}

	rowSize := r.width * 4
	if img.Stride == rowSize && len(img.Pix) == r.frameSize {
		_, err := r.pipe.Write(img.Pix)
		return err
	}
	for y := 0; y < r.height; y++ {
		row := img.Pix[y*img.Stride:]
		if _, err := r.pipe.Write(row[:rowSize]); err != nil {
			return err
		}
	}
	return nil
}

// Close ends the stream and waits for FFmpeg to finish writing the file.
func (r *Recorder) Close() error {
	r.pipe.Close()
	return <-r.done
}
