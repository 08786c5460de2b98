package scene

import (
	"fmt"
	"math"
	"testing"

	"MinaVision/shared/blockmodel"
	"MinaVision/shared/config"

	"github.com/go-gl/mathgl/mgl64"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.HorizontalScale = 0.7
	cfg.HeightScale = 1.8
	cfg.MaxVisibleBlocks = 5000
	return cfg
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestBuildAxisRemapAndScales(t *testing.T) {
	records := []blockmodel.BlockRecord{{
		Centroid: mgl64.Vec3{10, 20, 30},
		Dims:     mgl64.Vec3{2, 4, 6},
		Rock:     "granite",
	}}

	model := Build(records, testConfig())

	if len(model.Blocks) != 1 {
		t.Fatalf("Build() produziu %d blocos, esperava 1", len(model.Blocks))
	}
	b := model.Blocks[0]

	// X origem fica em X; Z origem (elevação) vira Y do render com
	// exagero vertical; Y origem vira profundidade negada.
	if !almostEqual(b.Position.X, 10*0.7) || !almostEqual(b.Position.Y, 30*1.8) || !almostEqual(b.Position.Z, -20*0.7) {
		t.Errorf("posição = %+v, esperava (7, 54, -14)", b.Position)
	}

	// As dimensões sofrem o mesmo remapeamento, sem negação de extensão
	if !almostEqual(b.Size.X, 2*0.7) || !almostEqual(b.Size.Y, 6*1.8) || !almostEqual(b.Size.Z, 4*0.7) {
		t.Errorf("dimensões = %+v, esperava (1.4, 10.8, 2.8)", b.Size)
	}

	if b.Rock != "granite" {
		t.Errorf("Rock = %q, esperava granite", b.Rock)
	}
}

func TestBuildPrefixTruncation(t *testing.T) {
	cfg := testConfig()
	cfg.MaxVisibleBlocks = 5000

	records := make([]blockmodel.BlockRecord, 6000)
	for i := range records {
		records[i] = blockmodel.BlockRecord{
			Centroid: mgl64.Vec3{float64(i), 0, 0},
			Dims:     mgl64.Vec3{1, 1, 1},
			Rock:     fmt.Sprintf("rock%d", i%4),
		}
	}

	model := Build(records, cfg)

	if len(model.Blocks) != 5000 {
		t.Fatalf("Build() produziu %d blocos, esperava exatamente 5000", len(model.Blocks))
	}
	if !model.Truncated {
		t.Error("Truncated deveria ser true")
	}

	// Truncamento por prefixo: os 5000 primeiros registros, na ordem
	for i := 0; i < 5000; i += 1000 {
		want := float32(i) * cfg.HorizontalScale
		if !almostEqual(model.Blocks[i].Position.X, want) {
			t.Errorf("bloco %d: X = %v, esperava %v", i, model.Blocks[i].Position.X, want)
		}
	}
}

func TestBuildUnderCapKeepsAll(t *testing.T) {
	records := make([]blockmodel.BlockRecord, 100)
	for i := range records {
		records[i] = blockmodel.BlockRecord{Dims: mgl64.Vec3{1, 1, 1}, Rock: "ore"}
	}

	model := Build(records, testConfig())

	if len(model.Blocks) != 100 || model.Truncated {
		t.Errorf("Build() = %d blocos (truncated=%v), esperava 100 sem truncar", len(model.Blocks), model.Truncated)
	}
}

func TestBuildCenterIsMeanOfPositions(t *testing.T) {
	records := []blockmodel.BlockRecord{
		{Centroid: mgl64.Vec3{0, 0, 0}, Dims: mgl64.Vec3{1, 1, 1}},
		{Centroid: mgl64.Vec3{10, 10, 10}, Dims: mgl64.Vec3{1, 1, 1}},
	}
	cfg := testConfig()

	model := Build(records, cfg)

	if !almostEqual(model.Center.X, 5*cfg.HorizontalScale) ||
		!almostEqual(model.Center.Y, 5*cfg.HeightScale) ||
		!almostEqual(model.Center.Z, -5*cfg.HorizontalScale) {
		t.Errorf("Center = %+v, esperava média das posições remapeadas", model.Center)
	}
	// Raio = distância do centro ao bloco mais afastado:
	// posições (0,0,0) e (7,18,-7), centro (3.5,9,-3.5)
	wantRadius := float32(math.Sqrt(3.5*3.5 + 9*9 + 3.5*3.5))
	if !almostEqual(model.Radius, wantRadius) {
		t.Errorf("Radius = %v, esperava %v", model.Radius, wantRadius)
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	model := Build(nil, testConfig())

	if len(model.Blocks) != 0 {
		t.Errorf("Build(nil) produziu %d blocos, esperava 0", len(model.Blocks))
	}
}
