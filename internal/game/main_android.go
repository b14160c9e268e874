//go:build android

package game

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"dodge/internal/engine"
	"dodge/internal/scene"
)

type mobileGame struct {
	*hostGame

	fbWidth  int
	fbHeight int

	// GL sprite resources.
	glReady    bool
	spriteProg gl.Program
	spriteVBO  gl.Buffer
	spAPos     gl.Attrib
	spASize    gl.Attrib
	spAColor   gl.Attrib
	spAShape   gl.Attrib
	spURes     gl.Uniform
}

const spriteVertSrcMobile = `
attribute vec2 aPos;
attribute float aSize;
attribute vec4 aColor;
attribute float aShape;
uniform vec2 uResolution;
varying vec4 vColor;
varying float vShape;
void main() {
  vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  gl_PointSize = max(1.0, floor(aSize + 0.5));
  vColor = aColor;
  vShape = aShape;
}`

const spriteFragSrcMobile = `
precision mediump float;
varying vec4 vColor;
varying float vShape;
void main() {
  float a = vColor.a;
  if (vShape < 0.5 || vShape > 1.5) {
    float d = length(gl_PointCoord - vec2(0.5)) * 2.0;
    a *= 1.0 - smoothstep(0.94, 1.0, d);
    if (vShape > 1.5) {
      a *= smoothstep(0.74, 0.8, d);
    }
    if (a <= 0.0) discard;
  }
  gl_FragColor = vec4(vColor.rgb, a);
}`

func newMobileGame(settings scene.Settings) (*mobileGame, error) {
	hg, err := newHostGame(settings)
	if err != nil {
		return nil, err
	}
	return &mobileGame{hostGame: hg}, nil
}

func (g *mobileGame) handleTouch(e touch.Event) {
	// Only the initial contact counts; drags and lifts are ignored.
	if e.Type != touch.TypeBegin {
		return
	}
	g.tap(float64(e.X), float64(e.Y))
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		msg := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", msg)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		msg := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", msg)
	}
	return prog, nil
}

func (g *mobileGame) initGL(glctx gl.Context) error {
	if g.glReady {
		return nil
	}
	prog, err := linkProgram(glctx, spriteVertSrcMobile, spriteFragSrcMobile)
	if err != nil {
		return fmt.Errorf("sprite program: %w", err)
	}
	g.spriteProg = prog
	g.spriteVBO = glctx.CreateBuffer()
	g.spAPos = glctx.GetAttribLocation(prog, "aPos")
	g.spASize = glctx.GetAttribLocation(prog, "aSize")
	g.spAColor = glctx.GetAttribLocation(prog, "aColor")
	g.spAShape = glctx.GetAttribLocation(prog, "aShape")
	g.spURes = glctx.GetUniformLocation(prog, "uResolution")
	g.glReady = true
	return nil
}

func (g *mobileGame) destroyGL(glctx gl.Context) {
	if !g.glReady {
		return
	}
	glctx.DeleteBuffer(g.spriteVBO)
	glctx.DeleteProgram(g.spriteProg)
	g.glReady = false
}

func setSpriteAttribs(glctx gl.Context, pos, size, color, shape gl.Attrib) {
	const stride = scene.SpriteFloats * 4
	glctx.EnableVertexAttribArray(pos)
	glctx.EnableVertexAttribArray(size)
	glctx.EnableVertexAttribArray(color)
	glctx.EnableVertexAttribArray(shape)
	glctx.VertexAttribPointer(pos, 2, gl.FLOAT, false, stride, 0)
	glctx.VertexAttribPointer(size, 1, gl.FLOAT, false, stride, 8)
	glctx.VertexAttribPointer(color, 4, gl.FLOAT, false, stride, 12)
	glctx.VertexAttribPointer(shape, 1, gl.FLOAT, false, stride, 28)
}

func (g *mobileGame) drawGL(glctx gl.Context) {
	if !g.glReady || g.fbWidth <= 0 || g.fbHeight <= 0 {
		return
	}
	glctx.Viewport(0, 0, g.fbWidth, g.fbHeight)
	cr, cg, cb := scene.Palette.Background.Floats()
	glctx.ClearColor(cr, cg, cb, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	buf := g.buildSprites()
	if limit := MaxSpriteRender * scene.SpriteFloats; len(buf) > limit {
		buf = buf[:limit]
	}
	if len(buf) == 0 {
		return
	}
	glctx.UseProgram(g.spriteProg)
	glctx.BindBuffer(gl.ARRAY_BUFFER, g.spriteVBO)
	glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(buf), gl.STREAM_DRAW)
	setSpriteAttribs(glctx, g.spAPos, g.spASize, g.spAColor, g.spAShape)
	glctx.Uniform2f(g.spURes, float32(g.fbWidth), float32(g.fbHeight))
	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	glctx.DrawArrays(gl.POINTS, 0, len(buf)/scene.SpriteFloats)
	glctx.Disable(gl.BLEND)
}

func RunAndroid() {
	log.SetPrefix("dodge: ")
	settings, err := LoadSettings()
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
		settings = scene.Settings{Seed: uint64(time.Now().UnixNano()), Volume: scene.DefaultVolume, Config: engine.DefaultConfig()}
	}
	game, err := newMobileGame(settings)
	if err != nil {
		panic(fmt.Errorf("session: %w", err))
	}
	if !settings.Mute {
		if err := InitAudio(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			SetSFXVolume(settings.Volume)
		}
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var last time.Time

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					glctx = ctx
					if err := game.initGL(glctx); err != nil {
						panic(err)
					}
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						game.destroyGL(glctx)
						glctx = nil
					}
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				game.fbWidth = e.WidthPx
				game.fbHeight = e.HeightPx
				game.resize(e.WidthPx, e.HeightPx)

			case touch.Event:
				game.handleTouch(e)

			case paint.Event:
				if glctx == nil || game.fbWidth <= 0 || game.fbHeight <= 0 {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now
				game.step(dt)
				game.drawGL(glctx)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
