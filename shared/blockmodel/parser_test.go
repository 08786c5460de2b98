package blockmodel

import (
	"math"
	"testing"
)

const headerRows = 3

func TestParseSingleRow(t *testing.T) {
	raw := "x,y,z,dx,dy,dz,rock\nA\nB\nC\n10,20,30,2,2,2,granite\n"

	records := Parse(raw, headerRows)

	if len(records) != 1 {
		t.Fatalf("Parse() retornou %d registros, esperava 1", len(records))
	}

	rec := records[0]
	wantCentroid := [3]float64{10, 20, 30}
	wantDims := [3]float64{2, 2, 2}
	for axis := 0; axis < 3; axis++ {
		if math.Abs(rec.Centroid[axis]-wantCentroid[axis]) > 1e-9 {
			t.Errorf("Centroid[%d] = %v, esperava %v", axis, rec.Centroid[axis], wantCentroid[axis])
		}
		if math.Abs(rec.Dims[axis]-wantDims[axis]) > 1e-9 {
			t.Errorf("Dims[%d] = %v, esperava %v", axis, rec.Dims[axis], wantDims[axis])
		}
	}
	if rec.Rock != "granite" {
		t.Errorf("Rock = %q, esperava %q", rec.Rock, "granite")
	}
}

func TestParseDropsMalformedRows(t *testing.T) {
	header := "x,y,z,dx,dy,dz,rock\nmeta\nmeta\n"

	tests := []struct {
		name string
		rows string
		want int
	}{
		{"linha com 4 campos é excluída", "1,2,3,4\n10,20,30,1,1,1,ore\n", 1},
		{"centroide x não numérico é excluído", "abc,20,30,1,1,1,ore\n", 0},
		{"dimensão x não numérica é excluída", "10,20,30,abc,1,1,ore\n", 0},
		{"centroide x NaN é excluído", "NaN,20,30,1,1,1,ore\n", 0},
		{"centroide x infinito é excluído", "+Inf,20,30,1,1,1,ore\n", 0},
		{"linhas em branco são ignoradas", "\n\n10,20,30,1,1,1,ore\n\n", 1},
		{"dataset 100% malformado vira sequência vazia", "a\nb\nc\n", 0},
		{"campos intermediários inválidos degradam para zero", "10,xx,30,1,1,1,ore\n", 1},
	}

	for _, tt := range tests {
		got := len(Parse(header+tt.rows, headerRows))
		if got != tt.want {
			t.Errorf("%s: Parse() retornou %d registros, esperava %d", tt.name, got, tt.want)
		}
	}
}

func TestParseShortRowReducesCountByOne(t *testing.T) {
	header := "x,y,z,dx,dy,dz\nmeta\nmeta\n"
	good := "1,1,1,1,1,1\n2,2,2,1,1,1\n"
	withShort := good + "5,5,5,1\n"

	base := len(Parse(header+good, headerRows))
	got := len(Parse(header+withShort, headerRows))

	if got != base {
		t.Errorf("linha curta deveria ser excluída: %d registros, esperava %d", got, base)
	}
}

func TestParseRockColumnDetection(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"coluna rock detectada pelo nome", "cx,cy,cz,dx,dy,dz,rock\nm\nm\n1,2,3,1,1,1,ore\n", "ore"},
		{"detecção ignora maiúsculas", "cx,cy,cz,dx,dy,dz,ROCK\nm\nm\n1,2,3,1,1,1,ore\n", "ore"},
		{"cabeçalho sem rock usa unknown", "cx,cy,cz,dx,dy,dz,teor\nm\nm\n1,2,3,1,1,1,ore\n", RockUnknown},
		{"linha sem a coluna rock usa unknown", "cx,cy,cz,dx,dy,dz,x,rock\nm\nm\n1,2,3,1,1,1\n", RockUnknown},
		{"rock vazio usa unknown", "cx,cy,cz,dx,dy,dz,rock\nm\nm\n1,2,3,1,1,1,\n", RockUnknown},
	}

	for _, tt := range tests {
		records := Parse(tt.raw, headerRows)
		if len(records) != 1 {
			t.Errorf("%s: Parse() retornou %d registros, esperava 1", tt.name, len(records))
			continue
		}
		if records[0].Rock != tt.want {
			t.Errorf("%s: Rock = %q, esperava %q", tt.name, records[0].Rock, tt.want)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := len(Parse("", headerRows)); got != 0 {
		t.Errorf("Parse(\"\") retornou %d registros, esperava 0", got)
	}
}
