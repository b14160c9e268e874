//go:build !android

package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"dodge/internal/scene"
)

// DrawSprites renders a scene sprite buffer with standard alpha blending.
// Sprites past MaxSpriteRender are dropped.
func (r *Renderer) DrawSprites(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / scene.SpriteFloats
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*scene.SpriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
