package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"ebichart/internal"
	"ebichart/internal/app"
	"ebichart/internal/common"
	"ebichart/internal/config"
	"ebichart/internal/util"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var errNoCoins = errors.New("data contains no coins")

// Game is the chart window. The loader goroutine and the ebiten loop share
// state through mu.
type Game struct {
	cfg    *config.Config
	logger *util.Logger
	loader *internal.Loader

	mu      sync.Mutex
	wg      sync.WaitGroup
	loading bool
	loadErr error
	session *app.Session

	fontFace        text.Face
	solidColorImage *ebiten.Image
}

func NewGame(cfg *config.Config, logger *util.Logger, loader *internal.Loader, fontFace text.Face) *Game {
	return &Game{
		cfg:      cfg,
		logger:   logger,
		loader:   loader,
		loading:  true,
		fontFace: fontFace,
	}
}

// PreloadGlyphs draws the common glyphs once so the first frame does not stall.
func PreloadGlyphs(face text.Face) {
	tempImage := ebiten.NewImage(1, 1)
	text.Draw(tempImage, glyphsToPreload, face, &text.DrawOptions{})
}

// Load fetches source in the background; the window shows a loading state
// until it completes.
func (g *Game) Load(ctx context.Context, source string) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		ds, err := g.loader.Load(ctx, source)
		if err == nil && len(ds) == 0 {
			err = errNoCoins
		}

		g.mu.Lock()
		defer g.mu.Unlock()

		g.loading = false
		if err != nil {
			g.logger.Error(err, common.ErrCodeDataLoadFailed, common.ErrMsgDataLoadFailed, "Could not load coin data", "source", source)
			g.loadErr = err
			return
		}
		g.logger.Info("Coin data loaded", "source", source, "coins", len(ds))
		g.session = app.New(ds, g.cfg, g.logger, time.Now())
	}()
}

// Wait blocks until a pending Load has finished.
func (g *Game) Wait() {
	g.wg.Wait()
}

// SaveState writes the current view to the configured state file, if any.
func (g *Game) SaveState() {
	if g.cfg.StateFile == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return
	}

	if err := g.session.SaveState(g.cfg.StateFile); err != nil {
		g.logger.Error(err, common.ErrCodeStateSaveFailed, common.ErrMsgStateSaveFailed, "Could not save view", "file", g.cfg.StateFile)
		return
	}
	g.logger.Info("View saved", "file", g.cfg.StateFile)
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.session
	if s == nil {
		return nil
	}

	now := time.Now()
	s.Tick(now)

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.Press(x, y, now)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Drag(x, now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.Release()
	}

	s.Pointer(x, y)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowSize()
}
