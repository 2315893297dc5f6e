// Package overlay draws violation frames onto a screenshot.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/report"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	FailureColor = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	WarningColor = color.RGBA{R: 255, G: 176, B: 0, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Box is one frame to draw. Index is the 1-based violation number shown in
// reports, so a box can be matched to its row.
type Box struct {
	Index    int
	Severity report.Severity
	Frame    model.Rect
}

// Boxes lists one box per implicated element. Screen-level violations have
// no elements and produce no boxes.
func Boxes(vs []report.Violation) []Box {
	var boxes []Box
	for i, v := range vs {
		for _, el := range v.Elements {
			boxes = append(boxes, Box{Index: i + 1, Severity: v.Severity, Frame: el.Frame})
		}
	}
	return boxes
}

// Annotate draws boxes onto a copy of img. window is the screen-space rect
// the image was captured from; element frames are translated into it and
// scaled to image pixels. A zero window means the image covers the screen
// from the origin at 1:1. Boxes whose frames cannot be converted to pixels
// are skipped and counted in the returned skipped value.
func Annotate(img image.Image, boxes []Box, window model.Rect) (out *image.RGBA, skipped int) {
	rgba := ToRGBA(img)

	b := img.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if window.Width > 0 {
		scaleX = float64(b.Dx()) / window.Width
	}
	if window.Height > 0 {
		scaleY = float64(b.Dy()) / window.Height
	}

	// Warnings first so failures stay on top where frames overlap.
	for _, pass := range []report.Severity{report.SeverityWarning, report.SeverityFailure} {
		for _, box := range boxes {
			if box.Severity != pass {
				continue
			}
			r, err := pixelRect(box.Frame, window, scaleX, scaleY)
			if err != nil {
				skipped++
				continue
			}
			r = r.Add(b.Min)
			c := WarningColor
			if box.Severity == report.SeverityFailure {
				c = FailureColor
			}
			drawRectangle(rgba, r, c, 2)
			drawTextWithOutline(rgba, "#"+strconv.Itoa(box.Index), r.Min.X+3, r.Min.Y+3)
		}
	}
	return rgba, skipped
}

func pixelRect(f, window model.Rect, scaleX, scaleY float64) (image.Rectangle, error) {
	x, err := toPixel((f.X - window.X) * scaleX)
	if err != nil {
		return image.Rectangle{}, err
	}
	y, err := toPixel((f.Y - window.Y) * scaleY)
	if err != nil {
		return image.Rectangle{}, err
	}
	w, err := toPixel(f.Width * scaleX)
	if err != nil {
		return image.Rectangle{}, err
	}
	h, err := toPixel(f.Height * scaleY)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(x, y, x+w, y+h), nil
}

func toPixel(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("frame coordinate %v is not finite", v)
	}
	return safecast.Convert[int](math.Round(v))
}

// ToRGBA converts any image to RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawRectangle draws an outline of the given thickness, clipped to img.
func drawRectangle(img *image.RGBA, r image.Rectangle, c color.Color, thickness int) {
	r = r.Canon()
	if r.Intersect(img.Bounds()).Empty() {
		return
	}
	for i := 0; i < thickness; i++ {
		inner := r.Inset(i)
		if inner.Empty() {
			return
		}
		edges := []image.Rectangle{
			image.Rect(inner.Min.X, inner.Min.Y, inner.Max.X, inner.Min.Y+1),
			image.Rect(inner.Min.X, inner.Max.Y-1, inner.Max.X, inner.Max.Y),
			image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+1, inner.Max.Y),
			image.Rect(inner.Max.X-1, inner.Min.Y, inner.Max.X, inner.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(img, e.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
}

// drawTextWithOutline draws text whose top-left corner is at (x, y).
func drawTextWithOutline(img *image.RGBA, text string, x, y int) {
	face := basicfont.Face7x13
	baseline := y + face.Ascent
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, x+dx, baseline+dy, outlineColor)
		}
	}
	drawString(img, text, x, baseline, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// Decode reads a PNG or JPEG screenshot.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode screenshot: %w", err)
	}
	return img, format, nil
}

// FormatForPath picks the encoder from a file extension, defaulting to PNG.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	}
	return "png"
}

// Encode writes img as "png" or "jpeg".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case "png", "":
		return png.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format: %q", format)
}
