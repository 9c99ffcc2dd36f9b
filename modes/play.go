package modes

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake-term/constants"
	"github.com/lixenwraith/snake-term/input"
	"github.com/lixenwraith/snake-term/render"
	"github.com/lixenwraith/snake-term/replay"
	"github.com/lixenwraith/snake-term/status"
)

// roundEnd is why runRound returned
type roundEnd uint8

const (
	roundDied roundEnd = iota
	roundQuit
	roundExhausted // replay ran out of moves
)

// play runs rounds until the player returns to the menu or quits
func (s *Session) play() (outcome, error) {
	if err := s.newGame(); err != nil {
		return outcomeQuit, err
	}
	if s.recorder != nil {
		s.recorder.Reset()
	}

	rounds := s.stats.Counter(status.Rounds)
	for {
		round := rounds.Add(1)
		s.log.WithFields(log.Fields{
			"round": round,
			"seed":  s.game.Seed(),
		}).Info("round started")

		if s.runRound(nil) == roundQuit {
			s.saveRecording()
			return outcomeQuit, nil
		}

		s.deathFlash()
		next := s.gameOver(s.finishRound())
		if next != outcomeRestart {
			return next, nil
		}

		s.game.Restart()
		if s.recorder != nil {
			s.recorder.Reset()
		}
	}
}

// runRound ticks the game until a snake dies or the player quits
// With a player, each tick first queues the recorded move and live steering is ignored
func (s *Session) runRound(player *replay.Player) roundEnd {
	g := s.game
	paused := false
	pausedFlag := s.stats.Flag(status.Paused)
	ticks := s.stats.Counter(status.Ticks)
	food := s.stats.Counter(status.FoodEaten)
	bonus := s.stats.Counter(status.BonusEaten)
	defer pausedFlag.Store(false)

	s.show(func() {
		overlay := render.OverlayNone
		switch {
		case paused:
			overlay = render.OverlayPaused
		case player != nil:
			overlay = render.OverlayReplay
		}
		s.renderer.RenderFrame(g, overlay)
	})

	timer := time.NewTimer(s.tickDelay())
	defer timer.Stop()

	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return roundQuit
			}
			intent, ok := s.handleEvent(input.ContextGame, ev)
			if !ok {
				continue
			}

			switch intent.Type {
			case input.IntentQuit:
				return roundQuit
			case input.IntentPause:
				paused = !paused
				pausedFlag.Store(paused)
				if paused {
					timer.Stop()
				} else {
					timer.Reset(s.tickDelay())
				}
				s.redraw()
			case input.IntentMove:
				if !paused && player == nil {
					g.QueueDirection(intent.Player, intent.Dir)
				}
			}

		case <-timer.C:
			if player != nil {
				dir, ok, more := player.Next()
				if !more {
					return roundExhausted
				}
				if ok {
					g.QueueDirection(0, dir)
				}
			}

			res := g.Tick()
			ticks.Add(1)
			if s.recorder != nil && player == nil {
				s.recorder.Record(res.Turn, res.Turned)
			}
			if res.Died {
				return roundDied
			}
			if res.Ate {
				food.Add(1)
				s.cues.PlayEat()
			}
			if res.AteBonus {
				bonus.Add(1)
				s.cues.PlayBonus()
			}
			if res.Shrunk {
				s.log.WithField("frame", res.Frame).Debug("border shrunk")
			}

			s.redraw()
			timer.Reset(s.tickDelay())
		}
	}
}

// tickDelay follows the longest snake when progressive speed is on
func (s *Session) tickDelay() time.Duration {
	length := 0
	for _, sn := range s.game.Snakes() {
		length = max(length, sn.Length)
	}
	return s.settings.EffectiveSpeed(length)
}

// deathFlash plays the death cue and animates the dead snakes
// Input is not read here; keys pressed during the flash reach the next screen
func (s *Session) deathFlash() {
	s.stats.Counter(status.Deaths).Add(1)
	s.cues.PlayDeath()
	for frame := 0; frame < constants.DeathFlashFrames; frame++ {
		s.renderer.RenderDeathFrame(s.game, frame)
		time.Sleep(s.deathFrameDelay)
	}
}

// finishRound records the high score and replay for the round just lost
func (s *Session) finishRound() render.GameOverView {
	g := s.game
	view := render.GameOverView{
		HighScore:   g.BestScore(),
		AutoRestart: s.settings.AutoRestart,
	}
	for _, sn := range g.Snakes() {
		view.Scores = append(view.Scores, sn.Score)
	}

	if s.scores != nil {
		best, isNew, err := s.scores.Update(g.BestScore())
		if err != nil {
			s.log.WithError(err).WithField("path", s.scores.Path()).Warn("failed to save high score")
		}
		view.HighScore, view.NewRecord = best, isNew
	}

	entry := s.log.WithFields(log.Fields{
		"scores": view.Scores,
		"frame":  g.Frame(),
	})
	if view.NewRecord {
		s.stats.Counter(status.HighScores).Add(1)
		s.cues.PlayHighScore()
		entry = entry.WithField("high_score", view.HighScore)
	}
	entry.Info("round over")

	s.saveRecording()
	return view
}

// gameOver shows the result and waits for restart, menu or quit
func (s *Session) gameOver(view render.GameOverView) outcome {
	s.show(func() { s.renderer.RenderGameOver(s.game, view) })

	if view.AutoRestart {
		intent, open := s.waitIntent(input.ContextGameOver, s.restartDelay)
		switch {
		case !open || intent.Type == input.IntentQuit:
			return outcomeQuit
		case intent.Type == input.IntentMenu:
			return outcomeMenu
		}
		return outcomeRestart
	}

	for {
		intent, open := s.nextIntent(input.ContextGameOver)
		if !open {
			return outcomeQuit
		}
		switch intent.Type {
		case input.IntentRestart:
			return outcomeRestart
		case input.IntentMenu:
			return outcomeMenu
		case input.IntentQuit:
			return outcomeQuit
		}
	}
}

// saveRecording writes the current round's moves; the file holds the latest round only
func (s *Session) saveRecording() {
	if s.recorder == nil || s.recorder.Len() == 0 {
		return
	}

	cfg := s.game.Config()
	meta := replay.Meta{
		Session:   s.id,
		Seed:      s.game.Seed(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Obstacles: cfg.Obstacles,
		Wrap:      cfg.Wrap,
		Shrink:    cfg.ShrinkingBorder,
	}

	path := s.settings.Record
	if err := s.recorder.Save(path, meta); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("failed to save replay")
		return
	}
	s.log.WithFields(log.Fields{
		"path":  path,
		"ticks": s.recorder.Len(),
	}).Info("replay saved")
}
