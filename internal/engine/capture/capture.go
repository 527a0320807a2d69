// Package capture writes screenshots and numbered animation frames.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ParseFormat accepts "png" or "bmp" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, BMP:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format %q", f)
}

// Screenshot saves timestamped images.
type Screenshot struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewScreenshot creates a screenshot writer.
func NewScreenshot(outputDir, prefix string, format Format) *Screenshot {
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// Filename generates a screenshot filename without saving.
func (s *Screenshot) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, s.format))
}

// CaptureFromPixels saves raw RGBA pixels read back from OpenGL.
// Rows are flipped since OpenGL has its origin at bottom-left.
func (s *Screenshot) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FromGLPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.CaptureFromImage(img)
}

// CaptureFromImage saves an existing image.
func (s *Screenshot) CaptureFromImage(img image.Image) (string, error) {
	filename := s.Filename()
	if err := writeFile(filename, img, s.format); err != nil {
		return "", err
	}
	return filename, nil
}

// FromGLPixels converts bottom-up RGBA rows to an image.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// Sequence writes numbered frames: <dir>/<prefix>_007.bmp.
type Sequence struct {
	outputDir string
	prefix    string
	format    Format
	pad       int
}

// NewSequence creates a frame writer for n frames. Frame numbers are
// zero-padded to the width of n.
func NewSequence(outputDir, prefix string, n int, format Format) *Sequence {
	return &Sequence{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		pad:       len(strconv.Itoa(max(n, 1))),
	}
}

// Filename returns the path of frame i.
func (s *Sequence) Filename(i int) string {
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%0*d.%s", s.prefix, s.pad, i, s.format))
}

// Write saves frame i and returns its path.
func (s *Sequence) Write(i int, img image.Image) (string, error) {
	filename := s.Filename(i)
	if err := writeFile(filename, img, s.format); err != nil {
		return "", err
	}
	return filename, nil
}

func writeFile(filename string, img image.Image, f Format) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return file.Close()
}
