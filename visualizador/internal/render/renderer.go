// Package render desenha o modelo de blocos com raylib: um mesh de cubo
// compartilhado, um material por litologia e matrizes por bloco, com o
// shader de corte aplicado por grupo.
package render

import (
	"log"

	"MinaVision/visualizador/internal/clipping"
	"MinaVision/visualizador/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RockGroup reúne todos os blocos de uma mesma litologia para
// compartilhar um único material. O agrupamento existe só por eficiência
// de render; não tem efeito semântico. Cada grupo é um alvo recortável
// registrado na máquina de corte.
type RockGroup struct {
	Rock       string
	Color      rl.Color
	Transforms []rl.Matrix

	material rl.Material

	// Referência de corte guardada no grupo (estado de material)
	clipped    bool
	clipNormal rl.Vector3
	clipPos    float32
}

// ApplyClip instala o plano de corte no material do grupo.
func (g *RockGroup) ApplyClip(normal rl.Vector3, position float32) {
	g.clipped = true
	g.clipNormal = normal
	g.clipPos = position
}

// ClearClip remove a referência de corte do material do grupo.
func (g *RockGroup) ClearClip() {
	g.clipped = false
}

// Renderer possui a cena carregada: grupos por rocha, shader dos blocos
// e o indicador do plano de corte. Todas as chamadas de GPU acontecem na
// thread principal.
type Renderer struct {
	BlockShader rl.Shader
	Groups      []*RockGroup

	cube       rl.Mesh
	cubeLoaded bool

	clipEnabledLoc int32
	clipNormalLoc  int32
	clipPosLoc     int32

	clippingEnabled bool

	indicatorVisible bool
	indicatorPlane   clipping.Plane
	indicatorPos     float32

	// Limites do modelo carregado, para dimensionar o indicador
	center rl.Vector3
	radius float32
}

// NewRenderer cria o renderizador e compila o shader dos blocos.
// Exige janela raylib inicializada.
func NewRenderer() *Renderer {
	r := &Renderer{}

	if rl.IsWindowReady() {
		r.BlockShader = rl.LoadShaderFromMemory(blockVertexShader, blockFragmentShader)
		r.clipEnabledLoc = rl.GetShaderLocation(r.BlockShader, "clipEnabled")
		r.clipNormalLoc = rl.GetShaderLocation(r.BlockShader, "clipNormal")
		r.clipPosLoc = rl.GetShaderLocation(r.BlockShader, "clipPos")

		r.cube = rl.GenMeshCube(1.0, 1.0, 1.0)
		r.cubeLoaded = true
	}

	return r
}

// Upload substitui a cena renderizada pelo modelo informado, agrupando
// blocos por rocha na ordem de primeira ocorrência. Retorna os alvos
// recortáveis para registro na máquina de corte.
func (r *Renderer) Upload(model scene.Model, colors map[string]rl.Color) []clipping.Clippable {
	r.unloadGroups()

	index := make(map[string]*RockGroup, len(colors))
	for _, b := range model.Blocks {
		group, ok := index[b.Rock]
		if !ok {
			group = &RockGroup{Rock: b.Rock, Color: colors[b.Rock]}
			if r.cubeLoaded {
				group.material = rl.LoadMaterialDefault()
				group.material.Shader = r.BlockShader
				group.material.GetMap(rl.MapDiffuse).Color = group.Color
			}
			index[b.Rock] = group
			r.Groups = append(r.Groups, group)
		}

		group.Transforms = append(group.Transforms, blockTransform(b))
	}

	r.center = model.Center
	r.radius = model.Radius

	log.Printf("[Renderer] Cena carregada: %d blocos em %d grupos de rocha",
		len(model.Blocks), len(r.Groups))

	targets := make([]clipping.Clippable, len(r.Groups))
	for i, g := range r.Groups {
		targets[i] = g
	}
	return targets
}

// blockTransform monta a matriz do cubo unitário de um bloco: escala
// local para as dimensões e depois translação para o centroide. No
// raymath, MatrixMultiply(A, B) aplica A primeiro; a escala vem à
// esquerda, senão a translação também é escalada.
func blockTransform(b scene.Block) rl.Matrix {
	return rl.MatrixMultiply(
		rl.MatrixScale(b.Size.X, b.Size.Y, b.Size.Z),
		rl.MatrixTranslate(b.Position.X, b.Position.Y, b.Position.Z),
	)
}

// Draw desenha todos os grupos e, se ativo, o indicador do plano.
// Deve ser chamado dentro de BeginMode3D.
func (r *Renderer) Draw() {
	if !r.cubeLoaded {
		return
	}

	for _, g := range r.Groups {
		r.applyClipUniforms(g)
		for _, xf := range g.Transforms {
			rl.DrawMesh(r.cube, g.material, xf)
		}
	}

	if r.indicatorVisible {
		r.drawPlaneIndicator()
	}
}

// applyClipUniforms envia ao shader o estado de corte do material do grupo.
func (r *Renderer) applyClipUniforms(g *RockGroup) {
	enabled := float32(0)
	if r.clippingEnabled && g.clipped {
		enabled = 1
	}
	rl.SetShaderValue(r.BlockShader, r.clipEnabledLoc, []float32{enabled}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.BlockShader, r.clipNormalLoc,
		[]float32{g.clipNormal.X, g.clipNormal.Y, g.clipNormal.Z}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.BlockShader, r.clipPosLoc, []float32{g.clipPos}, rl.ShaderUniformFloat)
}

// drawPlaneIndicator desenha uma lâmina translúcida na posição do plano.
func (r *Renderer) drawPlaneIndicator() {
	extent := r.radius*2 + 10
	const thickness = 0.4

	pos := r.center
	size := rl.Vector3{X: extent, Y: extent, Z: extent}

	switch r.indicatorPlane {
	case clipping.PlaneXY:
		pos.Y = r.indicatorPos
		size.Y = thickness
	case clipping.PlaneYZ:
		pos.X = r.indicatorPos
		size.X = thickness
	case clipping.PlaneXZ:
		pos.Z = r.indicatorPos
		size.Z = thickness
	default:
		return
	}

	rl.DrawCube(pos, size.X, size.Y, size.Z, rl.NewColor(255, 255, 255, 40))
	rl.DrawCubeWires(pos, size.X, size.Y, size.Z, rl.NewColor(255, 255, 255, 120))
}

// SetClippingEnabled liga ou desliga o flag global de corte do renderizador.
func (r *Renderer) SetClippingEnabled(enabled bool) {
	r.clippingEnabled = enabled
}

// ClippingEnabled informa o estado do flag global de corte.
func (r *Renderer) ClippingEnabled() bool {
	return r.clippingEnabled
}

// ShowPlaneIndicator posiciona e exibe o indicador do plano de corte.
func (r *Renderer) ShowPlaneIndicator(plane clipping.Plane, position float32) {
	r.indicatorVisible = true
	r.indicatorPlane = plane
	r.indicatorPos = position
}

// HidePlaneIndicator esconde o indicador do plano de corte.
func (r *Renderer) HidePlaneIndicator() {
	r.indicatorVisible = false
}

// BlockCount retorna o total de blocos na cena carregada.
func (r *Renderer) BlockCount() int {
	total := 0
	for _, g := range r.Groups {
		total += len(g.Transforms)
	}
	return total
}

// unloadGroups descarta os grupos atuais. Os materiais usam o shader
// compartilhado, então só o slice é zerado.
func (r *Renderer) unloadGroups() {
	r.Groups = nil
}

// Unload libera os recursos de GPU do renderizador.
func (r *Renderer) Unload() {
	r.unloadGroups()
	if r.cubeLoaded {
		rl.UnloadMesh(&r.cube)
		r.cubeLoaded = false
	}
	if r.BlockShader.ID != 0 {
		rl.UnloadShader(r.BlockShader)
	}
}
