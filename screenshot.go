package inkblot

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the pixel buffer. It is written
// after the next frame is rendered, as
// ScreenshotDir/<stamp>_f<frame>_<label>.png.
func (d *Driver) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots writes every queued capture. Failures are logged and the
// queue is dropped.
func (d *Driver) flushScreenshots() {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("inkblot: screenshot", slog.Any("err", fmt.Errorf("mkdir %s: %w", d.ScreenshotDir, err)))
		return
	}

	img := d.Buffer.NRGBA()
	stamp := time.Now().Format("20060102_150405")
	for _, label := range d.screenshotQueue {
		path := fmt.Sprintf("%s/%s_f%05d_%s.png", d.ScreenshotDir, stamp, d.frame, sanitizeLabel(label))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("inkblot: screenshot", slog.Any("err", err))
			continue
		}
		Logger().Debug("inkblot: screenshot written", slog.String("path", path))
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
