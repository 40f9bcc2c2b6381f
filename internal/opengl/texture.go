package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"gltutorials/gfx"
	"gltutorials/textures"
)

// Texture is a 2D texture object on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

func formatEnum(f gfx.PixelFormat) (uint32, error) {
	switch f {
	case gfx.FormatRed:
		return gl.RED, nil
	case gfx.FormatRGB:
		return gl.RGB, nil
	case gfx.FormatRGBA:
		return gl.RGBA, nil
	default:
		return 0, fmt.Errorf("no GL format for %v", f)
	}
}

// UploadTexture uploads img as a mipmapped, repeating 2D texture.
// Call this from the render thread (OpenGL context must be current).
func UploadTexture(img *textures.Image) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("nil texture")
	}
	if len(img.Pixels) == 0 {
		return nil, fmt.Errorf("texture %q has no pixel data", img.Name)
	}
	pf, err := img.Format()
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", img.Name, err)
	}
	format, err := formatEnum(pf)
	if err != nil {
		return nil, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of 1- and 3-channel images are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		int32(format),
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: img.Width, Height: img.Height}, nil
}

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete frees the texture and zeroes its ID.
func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
