//go:build !android

package main

import "dodge/internal/game"

func main() {
	game.RunDesktop()
}
