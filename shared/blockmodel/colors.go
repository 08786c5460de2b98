package blockmodel

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Saturação e valor fixos da paleta de litologias. Só o matiz varia.
const (
	rockSaturation float32 = 0.75
	rockValue      float32 = 0.9
)

// DistinctRocks enumera os rótulos de rocha distintos na ordem da
// primeira ocorrência.
func DistinctRocks(records []BlockRecord) []string {
	seen := make(map[string]struct{}, 16)
	var rocks []string
	for _, rec := range records {
		if _, ok := seen[rec.Rock]; ok {
			continue
		}
		seen[rec.Rock] = struct{}{}
		rocks = append(rocks, rec.Rock)
	}
	return rocks
}

// BuildColorTable atribui a cada rótulo uma cor com matizes distribuídos
// uniformemente pelo círculo cromático (matiz = i/k). Determinístico para
// uma mesma lista ordenada de rótulos; datasets recarregados com outra
// ordem de primeira ocorrência recebem outra atribuição.
func BuildColorTable(rocks []string) map[string]rl.Color {
	table := make(map[string]rl.Color, len(rocks))
	k := len(rocks)
	for i, rock := range rocks {
		hue := float32(i) / float32(k) * 360.0
		table[rock] = rl.ColorFromHSV(hue, rockSaturation, rockValue)
	}
	return table
}
