package app

import (
	"fmt"

	"MinaVision/shared/config"
	"MinaVision/shared/util"
	"MinaVision/visualizador/internal/clipping"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// planeOptions são as quatro escolhas mutuamente exclusivas do painel.
// O índice 0 desliga o corte.
var planeOptions = []struct {
	label string
	plane clipping.Plane
}{
	{"Sem corte", clipping.PlaneNone},
	{"Plano XY (horizontal)", clipping.PlaneXY},
	{"Plano YZ (leste-oeste)", clipping.PlaneYZ},
	{"Plano XZ (norte-sul)", clipping.PlaneXZ},
}

// controlPanel é o painel de corte transversal: quatro botões de opção e
// um slider contínuo de deslocamento, desenhados à mão com raylib. O
// painel só emite transições da máquina de estados; quem manda é ela.
type controlPanel struct {
	offsetMin float32
	offsetMax float32

	selected int     // Índice em planeOptions
	offset   float32 // Valor corrente do slider (espaço da UI, sem inversão)

	dragging bool
}

func newControlPanel(cfg *config.Config) *controlPanel {
	return &controlPanel{
		offsetMin: cfg.ClipOffsetMin,
		offsetMax: cfg.ClipOffsetMax,
	}
}

// Geometria do painel (canto inferior esquerdo)
const (
	panelWidth   = 250
	panelHeight  = 168
	panelMargin  = 10
	panelPadding = 10
	radioSize    = 14
	radioStride  = 24
	sliderHeight = 12
)

func (p *controlPanel) bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      panelMargin,
		Y:      float32(rl.GetScreenHeight() - panelHeight - panelMargin),
		Width:  panelWidth,
		Height: panelHeight,
	}
}

func (p *controlPanel) radioRect(i int) rl.Rectangle {
	b := p.bounds()
	return rl.Rectangle{
		X:      b.X + panelPadding,
		Y:      b.Y + 28 + float32(i*radioStride),
		Width:  radioSize,
		Height: radioSize,
	}
}

func (p *controlPanel) sliderRect() rl.Rectangle {
	b := p.bounds()
	return rl.Rectangle{
		X:      b.X + panelPadding,
		Y:      b.Y + panelHeight - 28,
		Width:  panelWidth - 2*panelPadding,
		Height: sliderHeight,
	}
}

// update processa o mouse sobre o painel e dispara as transições da
// máquina de corte. Retorna true enquanto o painel está consumindo o
// mouse, para a câmera não orbitar junto.
func (p *controlPanel) update(m *clipping.Machine) bool {
	mouse := rl.GetMousePosition()
	overPanel := rl.CheckCollisionPointRec(mouse, p.bounds())

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && overPanel {
		for i := range planeOptions {
			hit := p.radioRect(i)
			// Área de clique inclui o texto ao lado do botão
			hit.Width = panelWidth - 2*panelPadding
			if rl.CheckCollisionPointRec(mouse, hit) {
				p.selectOption(m, i)
			}
		}

		if p.selected != 0 && rl.CheckCollisionPointRec(mouse, p.sliderRect()) {
			p.dragging = true
		}
	}

	if p.dragging {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			p.dragTo(m, mouse.X)
		} else {
			p.dragging = false
		}
	}

	return overPanel || p.dragging
}

// selectOption aplica a escolha de plano i (0 = sem corte).
func (p *controlPanel) selectOption(m *clipping.Machine, i int) {
	if i < 0 || i >= len(planeOptions) {
		return
	}
	p.selected = i
	if planeOptions[i].plane == clipping.PlaneNone {
		m.Disable()
		return
	}
	m.SelectPlane(planeOptions[i].plane)
	m.SetOffset(p.offset)
}

// dragTo converte a posição do mouse no trilho em valor de deslocamento.
func (p *controlPanel) dragTo(m *clipping.Machine, mouseX float32) {
	track := p.sliderRect()
	t := util.Clamp((mouseX-track.X)/track.Width, 0, 1)
	p.offset = p.offsetMin + t*(p.offsetMax-p.offsetMin)
	m.SetOffset(p.offset)
}

// draw desenha o painel. Chamar fora do BeginMode3D.
func (p *controlPanel) draw(m *clipping.Machine) {
	b := p.bounds()
	x := int32(b.X)
	y := int32(b.Y)

	rl.DrawRectangle(x, y, panelWidth, panelHeight, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, panelWidth, panelHeight, rl.NewColor(50, 50, 50, 255))

	rl.DrawText("CORTE TRANSVERSAL", x+panelPadding, y+8, 12, rl.Gray)

	for i, opt := range planeOptions {
		r := p.radioRect(i)
		cx := r.X + radioSize/2
		cy := r.Y + radioSize/2

		rl.DrawCircleLines(int32(cx), int32(cy), radioSize/2, rl.LightGray)
		if i == p.selected {
			rl.DrawCircle(int32(cx), int32(cy), radioSize/2-3, rl.SkyBlue)
		}
		rl.DrawText(opt.label, int32(r.X)+radioSize+8, int32(r.Y), 14, rl.White)
	}

	// Slider de deslocamento
	track := p.sliderRect()
	active := p.selected != 0

	trackColor := rl.NewColor(70, 70, 70, 255)
	knobColor := rl.Gray
	if active {
		knobColor = rl.SkyBlue
	}

	rl.DrawRectangleRec(track, trackColor)

	t := (p.offset - p.offsetMin) / (p.offsetMax - p.offsetMin)
	knobX := track.X + t*track.Width
	rl.DrawRectangle(int32(knobX)-4, int32(track.Y)-3, 8, sliderHeight+6, knobColor)

	label := "Deslocamento: --"
	if active {
		label = fmt.Sprintf("Deslocamento: %.0f (plano em %.0f)", m.Offset(), m.PlanePosition())
	}
	rl.DrawText(label, int32(track.X), int32(track.Y)-16, 12, rl.LightGray)
}
