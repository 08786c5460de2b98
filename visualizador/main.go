package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"MinaVision/shared/config"
	"MinaVision/visualizador/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	dataset := flag.String("dataset", "", "URL ou caminho do CSV do modelo de blocos")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	noCache := flag.Bool("no-cache", false, "Desativar o cache SQLite de datasets")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Log em arquivo, além do terminal
	f, err := os.OpenFile("debug_mv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
		log.Println("--- INICIANDO MINAVISION ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║         MinaVision v0.1.0            ║")
	log.Println("║  Visualizador 3D de modelo de blocos ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Flags sobrescrevem o config salvo
	if *dataset != "" {
		cfg.DatasetSource = *dataset
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *noCache {
		cfg.CacheEnabled = false
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
