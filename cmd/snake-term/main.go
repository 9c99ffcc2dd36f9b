package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/snake-term/audio"
	"github.com/lixenwraith/snake-term/config"
	"github.com/lixenwraith/snake-term/highscore"
	"github.com/lixenwraith/snake-term/modes"
	"github.com/lixenwraith/snake-term/replay"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := config.Default()
	if err := settings.LoadEnv(config.DefaultEnvFile); err != nil {
		return err
	}
	settings.BindFlags(flag.CommandLine)
	flag.Parse()

	logFile := setupLogging(settings.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	var player *replay.Player
	if settings.Replay != "" {
		if settings.Record != "" {
			return config.ErrReplayAndRecord
		}
		p, err := loadReplay(settings)
		if err != nil {
			return err
		}
		player = p
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE-TERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cols, rows := screen.Size()
	settings.Resolve(cols, rows)
	if err := settings.Validate(); err != nil {
		return err
	}

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(settings.Mute)

	scores := highscore.NewStore(highscore.DefaultPath())
	scores.Load()

	events := make(chan tcell.Event, 256)
	go pollEvents(screen, events)

	session := modes.NewSession(screen, events, settings, sounds, scores)
	if player != nil {
		return session.RunReplay(player)
	}
	return session.Run()
}

// loadReplay reads the move file and applies the recorded board options
// The .env sidecar supplies the seed; without it -seed must be given
func loadReplay(settings *config.Settings) (*replay.Player, error) {
	player, err := replay.Load(settings.Replay)
	if err != nil {
		return nil, err
	}

	meta, err := replay.LoadMeta(replay.MetaPath(settings.Replay))
	switch {
	case err == nil:
		settings.Seed = meta.Seed
		settings.MapWidth = meta.Width
		settings.MapHeight = meta.Height
		settings.Obstacles = meta.Obstacles
		settings.DisableBorders = meta.Wrap
		settings.ShrinkingBorder = meta.Shrink
	case errors.Is(err, replay.ErrNoSeed) && settings.Seed != 0:
		log.WithField("seed", settings.Seed).Warn("replay metadata missing, using -seed and current map options")
	default:
		return nil, err
	}

	settings.Multiplayer = false
	log.WithFields(log.Fields{
		"path":    settings.Replay,
		"ticks":   player.Len(),
		"session": meta.Session,
	}).Info("replay loaded")
	return player, nil
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
