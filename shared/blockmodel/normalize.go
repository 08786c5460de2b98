package blockmodel

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrEmptyDataset indica que nenhum registro válido sobrou após o parse.
var ErrEmptyDataset = errors.New("blockmodel: dataset sem registros válidos")

// Offset calcula o deslocamento de coordenadas do dataset: o mínimo por
// componente de todos os centroides. Subtraí-lo aproxima o modelo da
// origem e evita perda de precisão de ponto flutuante com coordenadas
// projetadas grandes (norte UTM passa de milhões de metros).
// Recalculado por completo a cada carga; falha só com entrada vazia.
func Offset(records []BlockRecord) (mgl64.Vec3, error) {
	if len(records) == 0 {
		return mgl64.Vec3{}, ErrEmptyDataset
	}

	min := records[0].Centroid
	for _, rec := range records[1:] {
		for axis := 0; axis < 3; axis++ {
			if rec.Centroid[axis] < min[axis] {
				min[axis] = rec.Centroid[axis]
			}
		}
	}
	return min, nil
}

// Normalize retorna uma cópia dos registros com os centroides
// transladados pelo offset. Os originais não são alterados.
func Normalize(records []BlockRecord, offset mgl64.Vec3) []BlockRecord {
	out := make([]BlockRecord, len(records))
	for i, rec := range records {
		rec.Centroid = rec.Centroid.Sub(offset)
		out[i] = rec
	}
	return out
}
