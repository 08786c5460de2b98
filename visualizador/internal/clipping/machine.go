// Package clipping mantém o estado do corte transversal: qual plano
// alinhado aos eixos está ativo e seu deslocamento. O pacote não conhece
// a UI; quem traduz cliques e sliders em transições é a camada de cima.
package clipping

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane identifica o plano de corte no sistema de coordenadas de origem
// do dataset (X leste, Y norte, Z elevação).
type Plane int

const (
	PlaneNone Plane = iota
	PlaneXY         // Normal = Z de origem (vertical)
	PlaneYZ         // Normal = X de origem
	PlaneXZ         // Normal = Y de origem
)

// String retorna o nome do plano para logs e HUD.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	}
	return "nenhum"
}

// Normal retorna a normal do plano no espaço de renderização.
// O remapeamento segue a cena: X origem = X render, Z origem = Y render
// (para cima), Y origem = Z render (profundidade).
func (p Plane) Normal() rl.Vector3 {
	switch p {
	case PlaneXY:
		return rl.Vector3{X: 0, Y: 1, Z: 0}
	case PlaneYZ:
		return rl.Vector3{X: 1, Y: 0, Z: 0}
	case PlaneXZ:
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{}
}

// Clippable é um alvo renderizável cujo material aceita um plano de corte.
// O renderizador mantém a coleção de alvos e a registra na máquina;
// nada de varrer o grafo de cena testando tipos de nó.
type Clippable interface {
	ApplyClip(normal rl.Vector3, position float32)
	ClearClip()
}

// Scene expõe o que a máquina precisa do renderizador além dos alvos:
// o flag global de clipping e o indicador visual do plano.
type Scene interface {
	SetClippingEnabled(enabled bool)
	ShowPlaneIndicator(plane Plane, position float32)
	HidePlaneIndicator()
}

// Machine é a máquina de estados do corte. No máximo um plano está
// ativo por vez; o flag global de clipping da cena é verdadeiro se e
// somente se o estado atual não é PlaneNone.
type Machine struct {
	plane  Plane
	offset float32

	scene   Scene
	targets []Clippable
}

// New cria a máquina ligada a uma cena. Alvos são registrados depois,
// a cada (re)construção da cena.
func New(scene Scene) *Machine {
	return &Machine{scene: scene}
}

// SetTargets substitui a coleção de alvos recortáveis. Se um plano está
// ativo, ele é reaplicado aos novos alvos para manter o estado coerente.
func (m *Machine) SetTargets(targets []Clippable) {
	m.targets = targets
	if m.plane != PlaneNone {
		m.applyActive()
	}
}

// Active retorna o plano ativo (PlaneNone se o corte está desligado).
func (m *Machine) Active() Plane {
	return m.plane
}

// Offset retorna o deslocamento atual definido pela UI.
func (m *Machine) Offset() float32 {
	return m.offset
}

// PlanePosition retorna a posição efetiva do plano ao longo da normal:
// a NEGAÇÃO do deslocamento da UI. Valor positivo no slider corta na
// direção positiva da normal; inverter esse sinal quebra o corte.
func (m *Machine) PlanePosition() float32 {
	return -m.offset
}

// SelectPlane ativa o plano p, desativando antes qualquer plano anterior
// (indicador escondido, materiais sem referência de corte). Selecionar o
// plano já ativo reaplica o mesmo estado (idempotente).
func (m *Machine) SelectPlane(p Plane) {
	if p == PlaneNone {
		m.Disable()
		return
	}

	m.clearTargets()
	m.plane = p
	m.applyActive()
	log.Printf("[Clipping] Plano %s ativo (offset %.1f)", p, m.offset)
}

// Disable desliga o corte: indicador escondido, materiais limpos e flag
// global da cena em falso.
func (m *Machine) Disable() {
	m.plane = PlaneNone
	m.clearTargets()
	if m.scene != nil {
		m.scene.HidePlaneIndicator()
		m.scene.SetClippingEnabled(false)
	}
	log.Printf("[Clipping] Corte desativado")
}

// SetOffset atualiza o deslocamento do plano ativo. Ignorado enquanto
// nenhum plano está ativo.
func (m *Machine) SetOffset(v float32) {
	if m.plane == PlaneNone {
		return
	}
	m.offset = v
	m.applyActive()
}

// applyActive propaga plano e posição para a cena e todos os alvos.
func (m *Machine) applyActive() {
	normal := m.plane.Normal()
	pos := m.PlanePosition()
	for _, tgt := range m.targets {
		tgt.ApplyClip(normal, pos)
	}
	if m.scene != nil {
		m.scene.ShowPlaneIndicator(m.plane, pos)
		m.scene.SetClippingEnabled(true)
	}
}

// clearTargets remove a referência de corte de todos os alvos.
func (m *Machine) clearTargets() {
	for _, tgt := range m.targets {
		tgt.ClearClip()
	}
}
