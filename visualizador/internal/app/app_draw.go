package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()

	if a.Loading {
		a.drawLoadingOverlay()
	} else {
		a.panel.draw(a.clip)
		a.drawHUD()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(40, 10.0)
	}

	a.renderer.Draw()

	rl.EndMode3D()
}

// drawLoadingOverlay mostra o progresso da carga inicial.
func (a *App) drawLoadingOverlay() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	msg := a.LoadingStatus
	textWidth := rl.MeasureText(msg, 20)
	rl.DrawText(msg, w/2-textWidth/2, h/2-10, 20, rl.LightGray)
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(150 + 18*len(a.Rocks))
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	// Dataset
	rl.DrawText("MODELO DE BLOCOS", x+10, y+45, 12, rl.Gray)
	blockInfo := fmt.Sprintf("Blocos: %d", a.renderer.BlockCount())
	if a.Truncated {
		blockInfo += fmt.Sprintf(" (teto de %d)", a.Config.MaxVisibleBlocks)
	}
	rl.DrawText(blockInfo, x+10, y+60, 16, rl.White)

	clipInfo := fmt.Sprintf("Corte: %s", a.clip.Active())
	rl.DrawText(clipInfo, x+10, y+80, 14, rl.LightGray)

	// Divisor
	rl.DrawLine(x+10, y+100, x+width-10, y+100, rl.NewColor(100, 100, 100, 100))

	// Legenda de litologias
	rl.DrawText("LITOLOGIAS", x+10, y+108, 12, rl.Gray)
	for i, rock := range a.Rocks {
		ry := y + 124 + int32(i*18)
		rl.DrawRectangle(x+10, ry, 12, 12, a.RockColors[rock])
		rl.DrawText(rock, x+28, ry-1, 14, rl.LightGray)
	}

	// Atalhos
	hintY := y + height - 20
	rl.DrawText("0-3: Corte | G: Grid | F3: HUD", x+10, hintY, 12, rl.SkyBlue)

	// Título no canto inferior direito
	title := "MinaVision v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}
