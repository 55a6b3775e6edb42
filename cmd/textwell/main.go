// Package main is a terminal demo for the textwell text area. It
// streams a file (or generated log lines) into a virtualized text
// area with mouse selection, scrolling, and live config reload.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textwell/internal/config"
	"github.com/dshills/textwell/internal/termview"
	"github.com/dshills/textwell/internal/textarea"
	"github.com/dshills/textwell/internal/textarea/core"
	"github.com/dshills/textwell/internal/textarea/fontface"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	filePath   string
	demo       bool
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "textwell.toml", "Path to configuration file")
	flag.StringVar(&opts.filePath, "file", "", "Text file to display")
	flag.BoolVar(&opts.demo, "demo", false, "Stream generated log lines")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("textwell %s (%s)\n", version, commit)
		return opts, false
	}
	return opts, true
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()
	screen.EnableMouse()

	app, err := newApp(screen, settings)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.filePath != "" {
		data, err := os.ReadFile(opts.filePath)
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		app.ta.SetText(string(data))
	}

	// Live config reload.
	watcher, err := config.NewWatcher(opts.configPath)
	if err == nil {
		watcher.OnReload(app.applySettings)
		if err := watcher.Start(); err == nil {
			defer watcher.Stop()
		}
	}

	quit := make(chan struct{})
	if opts.demo {
		go app.streamDemoLines(quit)
	}
	go app.tickLoop(quit)

	app.render()
	err = app.eventLoop()
	close(quit)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app wires a text area to a tcell screen.
type app struct {
	screen tcell.Screen
	view   *termview.View
	ta     *textarea.TextArea
	fg     core.Color

	// Pointer button state from the previous mouse event.
	dragging bool
}

func newApp(screen tcell.Screen, settings config.Settings) (*app, error) {
	w, h := screen.Size()

	fg, err := settings.ForegroundColor()
	if err != nil {
		return nil, err
	}
	hl, err := settings.HighlightColor()
	if err != nil {
		return nil, err
	}

	a := &app{screen: screen, fg: fg}

	a.view = termview.New(screen, 0, 0, w, h,
		termview.WithTabCells(settings.Text.TabCells),
		termview.WithHighlightColor(hl),
	)

	face := newFace(settings)
	a.ta, err = textarea.New(face, a.view.NewRenderer, float64(w), float64(h),
		textarea.WithDefaultColor(fg),
		textarea.WithHighlightColor(hl),
		textarea.WithAutoScrollToBottom(settings.Scroll.FollowTail),
		textarea.WithDragScrollSpeed(settings.Scroll.DragSpeed),
		textarea.WithCopyHandler(func(text string) {
			screen.SetClipboard([]byte(text))
		}),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func newFace(settings config.Settings) core.Face {
	faceOpts := []fontface.MonoOption{
		fontface.WithCellSize(settings.Text.CellWidth, settings.Text.LineHeight),
		fontface.WithTabCells(settings.Text.TabCells),
	}
	if r, ok := settings.ReplacementRune(); ok {
		faceOpts = append(faceOpts, fontface.WithReplacement(r))
	}
	return fontface.NewMono(faceOpts...)
}

// applySettings is the config reload handler.
func (a *app) applySettings(settings config.Settings) {
	if hl, err := settings.HighlightColor(); err == nil {
		a.ta.SetHighlightColor(hl)
	}
	a.ta.SetDragScrollSpeed(settings.Scroll.DragSpeed)
	a.ta.SetAutoScrollToBottom(settings.Scroll.FollowTail)
	if err := a.ta.SetFace(newFace(settings)); err == nil {
		a.render()
	}
}

func (a *app) render() {
	a.view.Render(a.ta.HighlightQuads())
	a.screen.Show()
}

// eventLoop polls the screen until quit. Returns nil on a clean quit.
func (a *app) eventLoop() error {
	for {
		ev := a.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			if a.handleKey(e) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(e)
		case *tcell.EventResize:
			w, h := e.Size()
			a.view.Resize(0, 0, w, h)
			a.ta.Resize(float64(w), float64(h))
			a.screen.Sync()
		case nil:
			return nil
		}
		a.render()
	}
}

// handleKey services keyboard shortcuts. Returns true to quit.
func (a *app) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlA:
		a.ta.HandleEvent(textarea.Event{Kind: textarea.EventKeyDown, Rune: 'a', Ctrl: true})
	case tcell.KeyCtrlC:
		a.ta.HandleEvent(textarea.Event{Kind: textarea.EventKeyDown, Rune: 'c', Ctrl: true})
	case tcell.KeyUp:
		a.ta.ScrollUp(1)
	case tcell.KeyDown:
		a.ta.ScrollDown(1)
	case tcell.KeyPgUp:
		a.ta.ScrollUp(a.ta.MaxVisibleLineCount())
	case tcell.KeyPgDn:
		a.ta.ScrollDown(a.ta.MaxVisibleLineCount())
	case tcell.KeyRune:
		if e.Rune() == 'q' {
			return true
		}
	}
	return false
}

// handleMouse translates tcell mouse events into text area events.
// Cell coordinates map to the cell center so hit testing lands on the
// glyph under the pointer.
func (a *app) handleMouse(e *tcell.EventMouse) {
	mx, my := e.Position()
	x := float64(mx) + 0.5
	y := float64(my) + 0.5
	buttons := e.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.ta.HandleEvent(textarea.Event{Kind: textarea.EventScroll, Lines: -1})
	case buttons&tcell.WheelDown != 0:
		a.ta.HandleEvent(textarea.Event{Kind: textarea.EventScroll, Lines: 1})
	case buttons&tcell.Button1 != 0:
		if a.dragging {
			a.ta.HandleEvent(textarea.Event{Kind: textarea.EventDrag, X: x, Y: y})
		} else {
			a.dragging = true
			a.ta.HandleEvent(textarea.Event{Kind: textarea.EventPointerDown, X: x, Y: y, Time: e.When()})
		}
	default:
		if a.dragging {
			a.dragging = false
			a.ta.HandleEvent(textarea.Event{Kind: textarea.EventPointerUp, X: x, Y: y})
		}
	}
}

// tickLoop drives drag auto-scroll while the pointer is held past the
// window edges.
func (a *app) tickLoop(quit <-chan struct{}) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			if a.ta.Tick(now) {
				a.render()
			}
		}
	}
}

// streamDemoLines appends generated log lines to exercise incremental
// layout and follow-tail scrolling.
func (a *app) streamDemoLines(quit <-chan struct{}) {
	levels := []string{"INFO", "WARN", "DEBUG", "ERROR"}
	colors := []core.Color{
		a.fg,
		{R: 220, G: 180, B: 60, A: 255},
		core.ColorGray,
		{R: 220, G: 80, B: 80, A: 255},
	}

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			n := rand.Intn(len(levels))
			line := fmt.Sprintf("%s %-5s worker=%d processed batch %d\n",
				now.Format("15:04:05.000"), levels[n], rand.Intn(8), i)
			chars := []rune(line)
			cs := make([]core.Color, len(chars))
			for j := range cs {
				cs[j] = colors[n]
			}
			_ = a.ta.AppendColored(chars, cs)
			a.render()
		}
	}
}
