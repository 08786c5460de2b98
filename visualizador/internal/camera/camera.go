// Package camera implementa o controlador de câmera orbital do
// visualizador: órbita com o mouse, zoom pela roda e pan WASD, tudo
// interpolado para dar sensação de peso.
package camera

import (
	"math"

	"MinaVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a movimentação e projeção da câmera.
type Controller struct {
	RLCamera rl.Camera3D

	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado alvo (para interpolação suave)
	TargetLookAt rl.Vector3
	TargetZoom   float32
	AngleY       float32 // Azimute (radianos)
	AngleX       float32 // Elevação (radianos, negativa = olhando de cima)

	// Estado atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera.
func New() *Controller {
	c := &Controller{
		MinZoom:      5.0,
		MaxZoom:      4000.0,
		MoveSpeed:    50.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    10.0,
		SmoothFactor: 0.1,

		TargetZoom: 100.0,
		AngleY:     45.0 * rl.Deg2rad,
		AngleX:     -35.0 * rl.Deg2rad, // Olhando de cima, padrão para modelos de cava
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.recompute()
	return c
}

// Frame posiciona a câmera para enquadrar o modelo carregado: mira no
// centro e recua o suficiente para o raio informado caber na tela.
func (c *Controller) Frame(center rl.Vector3, radius float32) {
	c.TargetLookAt = center
	c.CurrentLookAt = center

	dist := radius * 2.2
	if dist < c.MinZoom {
		dist = c.MinZoom
	}
	if dist > c.MaxZoom {
		c.MaxZoom = dist * 2
	}
	c.TargetZoom = dist
	c.CurrentZoom = dist

	c.recompute()
}

// Update interpola a câmera em direção ao estado alvo. Chamar a cada frame.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recompute()
}

// recompute converte ângulos esféricos e zoom em posição cartesiana.
func (c *Controller) recompute() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.AngleX)))
	sinX := float32(math.Sin(float64(c.AngleX)))
	cosY := float32(math.Cos(float64(c.AngleY)))
	sinY := float32(math.Sin(float64(c.AngleY)))

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX, // sinX negativo: olhamos de cima para baixo
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa entrada do usuário. Retorna true se houve movimento.
// O chamador decide quando a câmera pode consumir o mouse (o painel de
// corte tem prioridade).
func (c *Controller) HandleInput(dt float32, allowMouse bool) bool {
	moved := false

	if allowMouse {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			moved = true
			// Zoom proporcional à distância: perto anda fino, longe anda largo
			c.TargetZoom -= wheel * c.ZoomSpeed * (c.TargetZoom / 50.0)
			c.TargetZoom = util.Clamp(c.TargetZoom, c.MinZoom, c.MaxZoom)
		}

		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			delta := rl.GetMouseDelta()
			if delta.X != 0 || delta.Y != 0 {
				moved = true
			}
			c.AngleY -= delta.X * c.RotateSpeed * 0.005
			c.AngleX -= delta.Y * c.RotateSpeed * 0.005

			// Clamp da elevação para não virar a câmera de ponta cabeça
			c.AngleX = util.Clamp(c.AngleX, -89.0*rl.Deg2rad, -5.0*rl.Deg2rad)
		}
	}

	// Pan WASD projetado no plano horizontal
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	lookAt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := lookAt.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Velocidade cresce com o zoom: quanto mais alto, mais rápido
	speed := c.MoveSpeed * (c.CurrentZoom / 50.0) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(speed)
		lookAt = lookAt.Add(move)
		c.TargetLookAt = rl.Vector3{X: lookAt.X(), Y: lookAt.Y(), Z: lookAt.Z()}
		moved = true
	}

	return moved
}
