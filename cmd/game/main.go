// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/metrics"
	"go-survivors/internal/state"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $GAME_CONFIG or built-in)")
	debugAddr := flag.String("debug-addr", "localhost:6060", "address for pprof and /metrics, empty to disable")
	enemiesPath := flag.String("enemies", "", "path to YAML with enemy speed/max_health overrides")
	startFromMenu := flag.Bool("menu", false, "start from the title screen instead of the game")
	flag.Parse()

	sessionID := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal(err)
		}
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	logListener := &event.LogListener{}

	if *debugAddr != "" {
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			log.Println(http.ListenAndServe(*debugAddr, nil))
		}()
	}

	sm := state.NewStateMachine(&state.Session{
		Config: cfg,
		Font:   basicfont.Face7x13,
		OnNewGame: func(d *event.Dispatcher) {
			collector.Subscribe(d)
			logListener.Subscribe(d)
		},
	})
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		gs, err := state.NewGameState(sm)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	log.Printf("session %s started", sessionID)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivors")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
