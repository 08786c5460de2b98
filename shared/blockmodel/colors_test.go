package blockmodel

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDistinctRocksFirstOccurrenceOrder(t *testing.T) {
	records := []BlockRecord{
		{Rock: "granite"},
		{Rock: "ore"},
		{Rock: "granite"},
		{Rock: "schist"},
		{Rock: "ore"},
	}

	got := DistinctRocks(records)
	want := []string{"granite", "ore", "schist"}

	if len(got) != len(want) {
		t.Fatalf("DistinctRocks() = %v, esperava %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DistinctRocks()[%d] = %q, esperava %q", i, got[i], want[i])
		}
	}
}

func TestBuildColorTableEvenHueDistribution(t *testing.T) {
	rocks := []string{"granite", "ore", "schist", "waste"}

	table := BuildColorTable(rocks)

	if len(table) != len(rocks) {
		t.Fatalf("tabela com %d cores, esperava %d", len(table), len(rocks))
	}

	k := float32(len(rocks))
	for i, rock := range rocks {
		want := rl.ColorFromHSV(float32(i)/k*360.0, rockSaturation, rockValue)
		if table[rock] != want {
			t.Errorf("cor de %q = %v, esperava matiz %d/%d", rock, table[rock], i, len(rocks))
		}
	}
}

func TestBuildColorTableIdempotent(t *testing.T) {
	rocks := []string{"granite", "ore", "schist"}

	first := BuildColorTable(rocks)
	second := BuildColorTable(rocks)

	for rock, color := range first {
		if second[rock] != color {
			t.Errorf("cor de %q mudou entre execuções: %v vs %v", rock, color, second[rock])
		}
	}
}

func TestBuildColorTableDistinctColors(t *testing.T) {
	rocks := []string{"granite", "ore", "schist", "waste", "soil"}

	table := BuildColorTable(rocks)

	seen := make(map[rl.Color]string, len(table))
	for rock, color := range table {
		if prev, ok := seen[color]; ok {
			t.Errorf("rochas %q e %q receberam a mesma cor %v", prev, rock, color)
		}
		seen[color] = rock
	}
}

func TestBuildColorTableEmpty(t *testing.T) {
	if table := BuildColorTable(nil); len(table) != 0 {
		t.Errorf("tabela de lista vazia tem %d entradas, esperava 0", len(table))
	}
}
