// Package blockmodel carrega e prepara modelos de blocos de mineração:
// parsing do CSV exportado, normalização de coordenadas e classificação
// de litologias com atribuição de cores.
package blockmodel

import "github.com/go-gl/mathgl/mgl64"

// RockUnknown é o rótulo usado quando o dataset não traz coluna de litologia.
const RockUnknown = "unknown"

// BlockRecord representa um bloco do modelo: centroide e dimensões no
// sistema de coordenadas de origem (tipo UTM) e o rótulo da rocha.
// Imutável depois do parse.
type BlockRecord struct {
	Centroid mgl64.Vec3
	Dims     mgl64.Vec3
	Rock     string
}
