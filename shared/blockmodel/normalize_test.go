package blockmodel

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOffsetIsComponentwiseMinimum(t *testing.T) {
	records := []BlockRecord{
		{Centroid: mgl64.Vec3{650010, 7450020, 330}},
		{Centroid: mgl64.Vec3{650000, 7450050, 350}},
		{Centroid: mgl64.Vec3{650025, 7450000, 310}},
	}

	offset, err := Offset(records)
	if err != nil {
		t.Fatalf("Offset() erro inesperado: %v", err)
	}

	want := mgl64.Vec3{650000, 7450000, 310}
	if offset != want {
		t.Errorf("Offset() = %v, esperava %v", offset, want)
	}
}

func TestNormalizeProducesNonNegativeCentroids(t *testing.T) {
	records := []BlockRecord{
		{Centroid: mgl64.Vec3{10, 20, 30}, Rock: "granite"},
		{Centroid: mgl64.Vec3{15, 22, 28}, Rock: "ore"},
		{Centroid: mgl64.Vec3{12, 19, 35}, Rock: "granite"},
	}

	offset, err := Offset(records)
	if err != nil {
		t.Fatalf("Offset() erro inesperado: %v", err)
	}

	normalized := Normalize(records, offset)
	for i, rec := range normalized {
		for axis := 0; axis < 3; axis++ {
			if rec.Centroid[axis] < 0 {
				t.Errorf("registro %d: Centroid[%d] = %v, esperava >= 0", i, axis, rec.Centroid[axis])
			}
		}
	}

	// Os registros originais não podem ser alterados
	if records[0].Centroid != (mgl64.Vec3{10, 20, 30}) {
		t.Errorf("Normalize() alterou o slice original: %v", records[0].Centroid)
	}
}

func TestNormalizeSingleRecordLandsOnOrigin(t *testing.T) {
	records := []BlockRecord{{Centroid: mgl64.Vec3{10, 20, 30}, Dims: mgl64.Vec3{2, 2, 2}}}

	offset, err := Offset(records)
	if err != nil {
		t.Fatalf("Offset() erro inesperado: %v", err)
	}
	if offset != (mgl64.Vec3{10, 20, 30}) {
		t.Errorf("Offset() = %v, esperava (10, 20, 30)", offset)
	}

	normalized := Normalize(records, offset)
	if normalized[0].Centroid != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("centroide normalizado = %v, esperava origem", normalized[0].Centroid)
	}
}

func TestOffsetEmptyDataset(t *testing.T) {
	_, err := Offset(nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Offset(nil) erro = %v, esperava ErrEmptyDataset", err)
	}
}
