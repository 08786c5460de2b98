package blockmodel

import (
	"log"
	"math"
	"strconv"
	"strings"
)

// fieldDelimiter é o separador de campos do CSV exportado.
const fieldDelimiter = ","

// minNumericFields é o mínimo de colunas numéricas por linha de dados
// (centroide x,y,z seguido de dimensão x,y,z, nesta ordem).
const minNumericFields = 6

// Parse converte o texto bruto do CSV em uma sequência ordenada de
// BlockRecord. Filtro de melhor esforço: linhas malformadas são
// descartadas em silêncio e um dataset 100% malformado produz uma
// sequência vazia, nunca um erro.
//
// headerRows é a convenção do formato: esse número de linhas iniciais é
// sempre ignorado. A primeira delas é o cabeçalho, usado apenas para
// localizar a coluna "rock"; sem essa coluna, todo registro recebe o
// rótulo RockUnknown.
func Parse(raw string, headerRows int) []BlockRecord {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil
	}

	rockIdx := findRockColumn(lines[0])
	if rockIdx < 0 {
		log.Printf("[Parser] Cabeçalho sem coluna 'rock'; usando rótulo %q", RockUnknown)
	}

	if headerRows < 0 {
		headerRows = 0
	}

	capHint := len(lines) - headerRows
	if capHint < 0 {
		capHint = 0
	}
	records := make([]BlockRecord, 0, capHint)
	dropped := 0

	for i := headerRows; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		rec, ok := parseRow(line, rockIdx)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	if dropped > 0 {
		log.Printf("[Parser] %d linha(s) malformada(s) descartada(s)", dropped)
	}
	return records
}

// parseRow interpreta uma linha de dados. Só o centroide X e a dimensão X
// são validados como números finitos; os demais campos degradam para zero
// quando não parseiam.
func parseRow(line string, rockIdx int) (BlockRecord, bool) {
	fields := strings.Split(line, fieldDelimiter)
	if len(fields) < minNumericFields {
		return BlockRecord{}, false
	}

	var vals [minNumericFields]float64
	for i := 0; i < minNumericFields; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			if i == 0 || i == 3 {
				return BlockRecord{}, false
			}
			v = 0
		}
		vals[i] = v
	}

	rock := RockUnknown
	if rockIdx >= 0 && rockIdx < len(fields) {
		if r := strings.TrimSpace(fields[rockIdx]); r != "" {
			rock = r
		}
	}

	return BlockRecord{
		Centroid: [3]float64{vals[0], vals[1], vals[2]},
		Dims:     [3]float64{vals[3], vals[4], vals[5]},
		Rock:     rock,
	}, true
}

// findRockColumn localiza a coluna da litologia no cabeçalho por nome.
// Retorna -1 se o cabeçalho não tiver a coluna.
func findRockColumn(header string) int {
	for i, name := range strings.Split(header, fieldDelimiter) {
		if strings.EqualFold(strings.TrimSpace(name), "rock") {
			return i
		}
	}
	return -1
}
