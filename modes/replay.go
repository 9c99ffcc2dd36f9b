package modes

import (
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/snake-term/input"
	"github.com/lixenwraith/snake-term/render"
	"github.com/lixenwraith/snake-term/replay"
)

// RunReplay plays recorded moves against a fresh game built from the session settings,
// then holds the final board until a key is pressed
// Settings must carry the seed and board options the moves were recorded with
func (s *Session) RunReplay(p *replay.Player) error {
	if err := s.newGame(); err != nil {
		return err
	}

	entry := s.log.WithFields(log.Fields{
		"ticks": p.Len(),
		"seed":  s.game.Seed(),
	})
	entry.Info("replay started")

	switch s.runRound(p) {
	case roundQuit:
		entry.WithField("remaining", p.Remaining()).Info("replay aborted")
		return nil
	case roundDied:
		s.deathFlash()
	}

	view := render.GameOverView{
		HighScore:  s.game.BestScore(),
		ReplayDone: true,
	}
	for _, sn := range s.game.Snakes() {
		view.Scores = append(view.Scores, sn.Score)
	}
	if s.scores != nil {
		view.HighScore = max(view.HighScore, s.scores.Best())
	}
	s.show(func() { s.renderer.RenderGameOver(s.game, view) })

	for ev := range s.events {
		if _, ok := ev.(*tcell.EventKey); ok {
			break
		}
		s.handleEvent(input.ContextGameOver, ev)
	}

	entry.WithFields(log.Fields{
		"frame":     s.game.Frame(),
		"remaining": p.Remaining(),
	}).Info("replay finished")
	return nil
}
