// FILE: cmd/helio/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/helio/audio"
	"github.com/lixenwraith/helio/catalog"
	"github.com/lixenwraith/helio/engine"
	"github.com/lixenwraith/helio/input"
	"github.com/lixenwraith/helio/parameter"
	"github.com/lixenwraith/helio/render"
)

type app struct {
	screen  tcell.Screen
	session *engine.Session
	loop    *engine.Loop
	orch    *render.Orchestrator
	picks   *render.PickMap
	handler *input.Handler
	sound   *audio.Engine
}

func newApp(stars int, seed int64) (*app, error) {
	session, err := engine.NewSession(catalog.Default(), engine.NewMonotonicTimeProvider())
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewEngine()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the visualizer runs fine without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	a := &app{
		screen:  screen,
		session: session,
		loop:    engine.NewLoop(session, sound),
		orch:    render.NewOrchestrator(screen),
		picks:   render.NewPickMap(),
		sound:   sound,
	}
	a.handler = input.NewHandler(session, a.picks)

	a.orch.Register(render.NewStarfieldRenderer(stars, seed), render.PriorityBackground)
	a.orch.Register(render.NewRingRenderer(), render.PriorityRings)
	a.orch.Register(render.NewTrailRenderer(session.Registry.Len()), render.PriorityTrails)
	a.orch.Register(render.NewSunRenderer(), render.PriorityGlow)
	a.orch.Register(render.NewBodyRenderer(), render.PriorityEntities)
	a.orch.Register(render.NewInfoPanelRenderer(), render.PriorityUI)
	a.orch.Register(render.NewStatusBarRenderer(), render.PriorityUI)

	return a, nil
}

func (a *app) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.orch.Resize()
				continue
			}
			if !a.handler.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.loop.Step()
			a.orch.RenderFrame(render.NewContext(a.screen, a.session, a.picks))
		}
	}
}

func (a *app) cleanup() {
	a.sound.Close()
	a.screen.Fini()
}

func main() {
	colorMode := flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	stars := flag.Int("stars", parameter.StarCount, "number of background stars")
	seed := flag.Int64("seed", 0, "starfield seed (0 = time based)")
	flag.Parse()

	// tcell picks its color depth from COLORTERM
	switch *colorMode {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("COLORTERM", "")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	a, err := newApp(*stars, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer a.cleanup()

	a.run()
}
