package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "Stage(7)", Stage(7).String())
}

func TestPixelFormatString(t *testing.T) {
	assert.Equal(t, "red", FormatRed.String())
	assert.Equal(t, "rgb", FormatRGB.String())
	assert.Equal(t, "rgba", FormatRGBA.String())
	assert.Equal(t, "PixelFormat(0)", PixelFormat(0).String())
}
