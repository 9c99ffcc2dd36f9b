package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake-term/config"
	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/engine"
	"github.com/lixenwraith/snake-term/highscore"
	"github.com/lixenwraith/snake-term/input"
	"github.com/lixenwraith/snake-term/render"
	"github.com/lixenwraith/snake-term/replay"
	"github.com/lixenwraith/snake-term/status"
)

// Cues receives gameplay sound triggers
// audio.SoundManager satisfies it; a nil Cues plays nothing
type Cues interface {
	PlayEat()
	PlayBonus()
	PlayDeath()
	PlayHighScore()
	ToggleMute() bool
}

type silentCues struct{}

func (silentCues) PlayEat()         {}
func (silentCues) PlayBonus()       {}
func (silentCues) PlayDeath()       {}
func (silentCues) PlayHighScore()   {}
func (silentCues) ToggleMute() bool { return false }

// outcome is how a screen hands control back to its caller
type outcome uint8

const (
	outcomeQuit outcome = iota
	outcomeMenu
	outcomeRestart
)

var menuItems = []string{"Start Game", "Quit"}

// Session drives the menu, rounds and game over screens over one terminal
// Events are produced by a poller goroutine; everything else runs on the caller's goroutine
type Session struct {
	id       string
	screen   tcell.Screen
	events   <-chan tcell.Event
	settings *config.Settings
	renderer *render.TerminalRenderer
	mapper   *input.Mapper
	cues     Cues
	scores   *highscore.Store
	recorder *replay.Recorder
	stats    *status.Registry
	log      *log.Entry

	game   *engine.Game
	redraw func()

	deathFrameDelay time.Duration
	restartDelay    time.Duration
}

// NewSession wires a session; cues and scores may be nil
// A closed events channel is treated as a quit request
func NewSession(screen tcell.Screen, events <-chan tcell.Event, settings *config.Settings, cues Cues, scores *highscore.Store) *Session {
	if cues == nil {
		cues = silentCues{}
	}

	id := uuid.NewString()
	s := &Session{
		id:              id,
		screen:          screen,
		events:          events,
		settings:        settings,
		renderer:        render.NewTerminalRenderer(screen, settings),
		mapper:          input.NewMapper(settings.InvertControls, settings.Multiplayer),
		cues:            cues,
		scores:          scores,
		stats:           status.NewRegistry(),
		log:             log.WithField("session", id),
		deathFrameDelay: constants.DeathFlashInterval,
		restartDelay:    constants.AutoRestartDelay,
	}

	if settings.Record != "" {
		if settings.Multiplayer {
			s.log.Warn("recording is single player only, ignoring -record")
		} else {
			s.recorder = replay.NewRecorder()
		}
	}
	return s
}

// ID returns the session identifier used in logs and replay metadata
func (s *Session) ID() string {
	return s.id
}

// Game returns the current game, nil before the first round
func (s *Session) Game() *engine.Game {
	return s.game
}

// Stats returns the session counters
func (s *Session) Stats() *status.Registry {
	return s.stats
}

// Run shows the start menu and plays rounds until the player quits
func (s *Session) Run() error {
	s.log.WithFields(log.Fields{
		"width":       s.settings.MapWidth,
		"height":      s.settings.MapHeight,
		"multiplayer": s.settings.Multiplayer,
	}).Info("session started")
	defer func() {
		s.log.WithFields(s.stats.Fields()).Info("session ended")
	}()

	for {
		if !s.runMenu() {
			return nil
		}
		next, err := s.play()
		if err != nil {
			return err
		}
		if next == outcomeQuit {
			return nil
		}
	}
}

// runMenu returns true when Start Game is confirmed
func (s *Session) runMenu() bool {
	selected := 0
	best := 0
	if s.scores != nil {
		best = s.scores.Best()
	}

	s.show(func() {
		s.renderer.RenderMenu(render.MenuView{
			Items:       menuItems,
			Selected:    selected,
			HighScore:   best,
			Multiplayer: s.settings.Multiplayer,
			Width:       s.settings.MapWidth,
			Height:      s.settings.MapHeight,
		})
	})

	for {
		intent, open := s.nextIntent(input.ContextMenu)
		if !open {
			return false
		}

		switch intent.Type {
		case input.IntentMenuUp:
			selected = (selected + len(menuItems) - 1) % len(menuItems)
		case input.IntentMenuDown:
			selected = (selected + 1) % len(menuItems)
		case input.IntentConfirm:
			return selected == 0
		case input.IntentQuit:
			return false
		}
		s.redraw()
	}
}

// show draws a screen and keeps it for redraws after a resize
func (s *Session) show(draw func()) {
	s.redraw = draw
	draw()
}

// newGame creates the round state from the resolved settings
func (s *Session) newGame() error {
	g, err := engine.NewGame(s.settings.EngineConfig())
	if err != nil {
		return err
	}
	s.game = g
	return nil
}
