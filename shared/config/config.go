package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do MinaVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Dataset
	DatasetSource string `json:"dataset_source"` // URL http(s) ou caminho local do CSV
	CacheEnabled  bool   `json:"cache_enabled"`  // Cache SQLite de datasets já parseados

	// Formato do CSV de modelo de blocos.
	// HeaderRowsToSkip é uma convenção do formato exportado pela mineradora:
	// a primeira linha é o cabeçalho e as duas seguintes são metadados que
	// ignoramos incondicionalmente.
	HeaderRowsToSkip int `json:"header_rows_to_skip"`

	// Renderização
	MaxVisibleBlocks int     `json:"max_visible_blocks"` // Teto de blocos desenhados (truncamento por prefixo)
	HorizontalScale  float32 `json:"horizontal_scale"`   // Escala dos eixos horizontais (apresentação)
	HeightScale      float32 `json:"height_scale"`       // Exagero vertical (apresentação)

	// Corte transversal
	ClipOffsetMin float32 `json:"clip_offset_min"`
	ClipOffsetMax float32 `json:"clip_offset_max"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "MinaVision",
		Fullscreen:   false,
		TargetFPS:    60,

		DatasetSource: "modelo_blocos.csv",
		CacheEnabled:  true,

		HeaderRowsToSkip: 3,

		MaxVisibleBlocks: 5000,
		HorizontalScale:  0.7,
		HeightScale:      1.8,

		ClipOffsetMin: -2000,
		ClipOffsetMax: 2000,

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
