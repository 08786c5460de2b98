package app

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"MinaVision/shared/blockmodel"
	"MinaVision/visualizador/internal/scene"
)

// fetchTimeout limita a busca remota do dataset. Não há retry.
const fetchTimeout = 30 * time.Second

// loadDataset executa a sequência completa de carga em background:
// fetch → parse (com cache) → normalização → classificação → cena.
// Toda falha é registrada no log e engolida; o resultado de erro e o de
// dataset vazio são indistinguíveis para o usuário (cena vazia).
func (a *App) loadDataset(source string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro em loadDataset: %v", r)
		}
	}()

	log.Printf("[App] Carregando dataset: %s", source)

	raw, err := fetchSource(source)
	if err != nil {
		log.Printf("[App] Falha ao buscar dataset %s: %v", source, err)
		a.post(&loadResult{status: "Dataset indisponível"})
		return
	}

	records := a.parseWithCache(source, raw)

	offset, err := blockmodel.Offset(records)
	if err != nil {
		log.Printf("[App] Dataset %s sem registros válidos; nada a exibir", source)
		a.post(&loadResult{status: "Dataset sem blocos válidos"})
		return
	}
	log.Printf("[App] %d blocos válidos; offset de coordenadas (%.1f, %.1f, %.1f)",
		len(records), offset[0], offset[1], offset[2])

	normalized := blockmodel.Normalize(records, offset)

	rocks := blockmodel.DistinctRocks(normalized)
	colors := blockmodel.BuildColorTable(rocks)
	log.Printf("[App] %d litologias distintas", len(rocks))

	model := scene.Build(normalized, a.Config)

	a.post(&loadResult{
		ok:     true,
		status: fmt.Sprintf("%d blocos carregados", len(model.Blocks)),
		model:  model,
		rocks:  rocks,
		colors: colors,
	})
}

// parseWithCache consulta o cache SQLite antes de parsear; qualquer
// problema no cache degrada para o parse normal com um aviso.
func (a *App) parseWithCache(source, raw string) []blockmodel.BlockRecord {
	signature := int64(len(raw))

	if records, ok := a.cache.Lookup(source, signature); ok {
		return records
	}

	records := blockmodel.Parse(raw, a.Config.HeaderRowsToSkip)

	if a.cache != nil && len(records) > 0 {
		if err := a.cache.Store(source, signature, records); err != nil {
			log.Printf("[App] AVISO: falha ao gravar dataset no cache: %v", err)
		}
	}
	return records
}

// post entrega o resultado da carga ao slot lido pela thread principal.
func (a *App) post(result *loadResult) {
	a.mu.Lock()
	a.pending = result
	a.mu.Unlock()
}

// fetchSource resolve o locator do dataset: URL http(s) ou caminho local.
func fetchSource(source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(source)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("status HTTP %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
