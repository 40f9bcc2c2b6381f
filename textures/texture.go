// Package textures decodes image files into tightly packed pixel data ready
// for upload and maps channel counts to pixel formats.
package textures

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gltutorials/gfx"
)

// ErrUnsupportedChannels is returned for channel counts other than 1, 3 or 4.
var ErrUnsupportedChannels = errors.New("textures: unsupported channel count")

// Image holds decoded pixels, row-major, Channels bytes per pixel.
type Image struct {
	Name     string
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// Options controls Load.
type Options struct {
	// FlipVertical stores the bottom row first, matching the GL texture
	// coordinate origin.
	FlipVertical bool
}

// Load reads and decodes the image at path. Grayscale sources produce one
// channel, opaque colour sources three and anything with transparency four.
func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	out := FromImage(img, opts)
	out.Name = path
	return out, nil
}

// FromImage converts an already decoded image.
func FromImage(img image.Image, opts Options) *Image {
	channels := channelsOf(img)
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h*channels)

	for y := 0; y < h; y++ {
		row := y
		if opts.FlipVertical {
			row = h - 1 - y
		}
		for x := 0; x < w; x++ {
			idx := (row*w + x) * channels
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if channels == 1 {
				pixels[idx] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			pixels[idx] = n.R
			pixels[idx+1] = n.G
			pixels[idx+2] = n.B
			if channels == 4 {
				pixels[idx+3] = n.A
			}
		}
	}

	return &Image{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pixels:   pixels,
	}
}

type opaquer interface {
	Opaque() bool
}

func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return 3
	}
	return 4
}

// FormatFor maps a channel count to the matching pixel format.
func FormatFor(channels int) (gfx.PixelFormat, error) {
	switch channels {
	case 1:
		return gfx.FormatRed, nil
	case 3:
		return gfx.FormatRGB, nil
	case 4:
		return gfx.FormatRGBA, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}
}

// Format returns the pixel format for the image's channel count.
func (i *Image) Format() (gfx.PixelFormat, error) {
	return FormatFor(i.Channels)
}

// Checker creates an RGBA checkerboard with eight squares per side.
func Checker(name string, size int, c1, c2 color.RGBA) *Image {
	pixels := make([]byte, size*size*4)
	blockSize := size / 8
	if blockSize < 1 {
		blockSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := (y*size + x) * 4
			c := c2
			if ((x/blockSize)+(y/blockSize))%2 == 0 {
				c = c1
			}
			pixels[idx] = c.R
			pixels[idx+1] = c.G
			pixels[idx+2] = c.B
			pixels[idx+3] = c.A
		}
	}

	return &Image{
		Name:     name,
		Width:    size,
		Height:   size,
		Channels: 4,
		Pixels:   pixels,
	}
}

// LoadOrChecker loads path and falls back to a checkerboard when the file
// cannot be read or decoded. The load error is returned alongside the
// fallback so the caller can report it.
func LoadOrChecker(path string, opts Options) (*Image, error) {
	img, err := Load(path, opts)
	if err != nil {
		return Checker(path, 64, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{R: 200, G: 40, B: 160, A: 255}), err
	}
	return img, nil
}
