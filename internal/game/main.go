//go:build !android

package game

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()
	log.SetPrefix("dodge: ")

	settings, err := LoadSettings()
	if err != nil {
		panic(fmt.Errorf("settings: %w", err))
	}

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if !settings.Mute {
		if err := InitAudio(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			SetSFXVolume(settings.Volume)
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	game, err := newHostGame(settings)
	if err != nil {
		panic(fmt.Errorf("session: %w", err))
	}
	log.Printf("seed %d, %d balls", settings.Seed, settings.Config.BallCount)
	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		// Minimized windows report a 0x0 framebuffer; hold the round still.
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		game.resize(fbW, fbH)

		// Mouse button down is a touch-down.
		if input.JustClicked(window, glfw.MouseButtonLeft) {
			mx, my := CursorFramebufferPos(window, fbW, fbH)
			game.tap(mx, my)
		}
		// Space starts and restarts without aiming at anything.
		if input.JustPressed(window, glfw.KeySpace) && game.idle() {
			game.tap(-1, -1)
		}

		game.step(dt)

		rend.BeginFrame(fbW, fbH)
		rend.DrawSprites(game.buildSprites(), fbW, fbH)
		window.SwapBuffers()
	}
}
