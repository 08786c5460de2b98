package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera(allowMouse bool) {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt, allowMouse)
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Atalhos do corte: 0 desliga, 1/2/3 selecionam o plano
	if rl.IsKeyPressed(rl.KeyZero) {
		a.panel.selectOption(a.clip, 0)
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		a.panel.selectOption(a.clip, 1)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		a.panel.selectOption(a.clip, 2)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		a.panel.selectOption(a.clip, 3)
	}
}
