// Package scene transforma registros normalizados do modelo de blocos em
// geometria pronta para o renderizador: remapeamento de eixos, escalas de
// apresentação e teto de blocos visíveis. Puro, sem chamadas de GPU.
package scene

import (
	"log"
	"math"

	"MinaVision/shared/blockmodel"
	"MinaVision/shared/config"
	"MinaVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Block é um bloco pronto para desenhar: posição e extensão no espaço de
// renderização, mais o rótulo da rocha para agrupamento de material.
type Block struct {
	Position rl.Vector3
	Size     rl.Vector3
	Rock     string
}

// Model é o resultado da construção da cena.
type Model struct {
	Blocks []Block

	// Center é a média das posições remapeadas; usado uma única vez para
	// enquadrar a câmera após a carga.
	Center rl.Vector3

	// Radius é a maior distância de um bloco ao centro, para a câmera
	// saber o quanto recuar.
	Radius float32

	// Truncated indica que o dataset passou do teto de blocos visíveis.
	Truncated bool
}

// Build converte os registros já normalizados em um Model.
//
// O remapeamento de eixos é fixo: X de origem continua X; Z de origem
// (elevação) vira o eixo vertical do render (Y); Y de origem vira a
// profundidade (Z do render, negado para manter a mão do sistema, como
// no resto do projeto). Posições e dimensões sofrem o mesmo
// remapeamento. A escala vertical exagera a elevação; a horizontal
// encolhe o plano — ambas são só apresentação.
func Build(records []blockmodel.BlockRecord, cfg *config.Config) Model {
	var model Model

	if cfg.MaxVisibleBlocks > 0 && len(records) > cfg.MaxVisibleBlocks {
		// Válvula de segurança de desempenho: truncamento por prefixo,
		// sem downsampling espacial nem LOD.
		log.Printf("[Scene] Dataset com %d blocos excede o teto de %d; truncando",
			len(records), cfg.MaxVisibleBlocks)
		records = records[:cfg.MaxVisibleBlocks]
		model.Truncated = true
	}

	h := cfg.HorizontalScale
	v := cfg.HeightScale

	model.Blocks = make([]Block, len(records))
	var sumX, sumY, sumZ float64

	for i, rec := range records {
		pos := rl.Vector3{
			X: float32(rec.Centroid[0]) * h,
			Y: float32(rec.Centroid[2]) * v,
			Z: float32(-rec.Centroid[1]) * h,
		}
		model.Blocks[i] = Block{
			Position: pos,
			Size: rl.Vector3{
				X: float32(rec.Dims[0]) * h,
				Y: float32(rec.Dims[2]) * v,
				Z: float32(rec.Dims[1]) * h,
			},
			Rock: rec.Rock,
		}
		sumX += float64(pos.X)
		sumY += float64(pos.Y)
		sumZ += float64(pos.Z)
	}

	if n := float64(len(model.Blocks)); n > 0 {
		model.Center = rl.Vector3{
			X: float32(sumX / n),
			Y: float32(sumY / n),
			Z: float32(sumZ / n),
		}
	}

	var maxDistSq float32
	for _, b := range model.Blocks {
		if d := util.DistSq(b.Position, model.Center); d > maxDistSq {
			maxDistSq = d
		}
	}
	model.Radius = float32(math.Sqrt(float64(maxDistSq)))

	return model
}
