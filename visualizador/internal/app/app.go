package app

import (
	"log"
	"sync"

	"MinaVision/shared/blockmodel"
	"MinaVision/shared/config"
	"MinaVision/visualizador/internal/camera"
	"MinaVision/visualizador/internal/clipping"
	"MinaVision/visualizador/internal/render"
	"MinaVision/visualizador/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Buscando e processando o dataset
	StateViewing                 // Visualizando o modelo
)

// loadResult é o que a goroutine de carga entrega à thread principal.
// O upload para a GPU só pode acontecer na thread principal, então a
// goroutine prepara tudo e deixa o resultado em um slot pendente.
type loadResult struct {
	ok     bool // false = dataset vazio ou falha de transporte (cena fica vazia)
	status string

	model  scene.Model
	rocks  []string
	colors map[string]rl.Color
}

// App é a aplicação principal do MinaVision.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.Controller

	renderer *render.Renderer
	clip     *clipping.Machine
	cache    *blockmodel.Cache
	panel    *controlPanel

	// Slot do resultado de carga (goroutine → thread principal)
	mu      sync.Mutex
	pending *loadResult

	// Estado do dataset carregado
	Source     string
	Rocks      []string
	RockColors map[string]rl.Color
	Truncated  bool

	Loading       bool
	LoadingStatus string
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:        cfg,
		State:         StateLoading,
		Source:        cfg.DatasetSource,
		Loading:       true,
		LoadingStatus: "Carregando modelo de blocos...",
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)

	a.Cam = camera.New()
	a.renderer = render.NewRenderer()
	a.clip = clipping.New(a.renderer)
	a.panel = newControlPanel(a.Config)

	if a.Config.CacheEnabled {
		cache, err := blockmodel.OpenCache()
		if err != nil {
			log.Printf("[App] AVISO: cache de datasets indisponível: %v", err)
		} else {
			a.cache = cache
		}
	}

	log.Println("[MinaVision] Janela inicializada com sucesso")
	log.Printf("[MinaVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	// Carga única: fetch → parse → normalização → cena, fora da thread
	// principal. Não há suporte a cargas concorrentes nem cancelamento.
	go a.loadDataset(a.Source)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.consumePending()

	switch a.State {
	case StateViewing:
		// O painel tem prioridade sobre o mouse; a câmera só orbita fora dele
		panelBusy := a.panel.update(a.clip)
		a.updateCamera(!panelBusy)
		a.updateInput()
	case StateLoading:
		// Câmera livre durante a carga; o painel só aparece depois
		a.updateCamera(true)
	}
}

// consumePending instala na GPU o resultado de uma carga concluída.
func (a *App) consumePending() {
	a.mu.Lock()
	result := a.pending
	a.pending = nil
	a.mu.Unlock()

	if result == nil {
		return
	}

	a.Loading = false
	a.LoadingStatus = result.status
	a.State = StateViewing

	if !result.ok {
		// Dataset vazio e falha de transporte terminam igual: cena vazia,
		// mensagem no log. Nada é propagado.
		return
	}

	a.Rocks = result.rocks
	a.RockColors = result.colors
	a.Truncated = result.model.Truncated

	targets := a.renderer.Upload(result.model, result.colors)
	a.clip.SetTargets(targets)

	if len(result.model.Blocks) > 0 {
		a.Cam.Frame(result.model.Center, result.model.Radius)
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.cache.Close()
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[MinaVision] Erro ao salvar configurações: %v", err)
	}
}
