// Package music starts background music on the first user interaction that
// lets it play.
package music

import "github.com/iburimskiy/heart-particles/internal/logging"

type Player interface {
	Play() error
}

// Autoplay retries Player.Play on each interaction until it succeeds once.
// Failures are expected and only logged at debug level.
type Autoplay struct {
	player  Player
	log     logging.Logger
	playing bool
}

func NewAutoplay(p Player, log logging.Logger) *Autoplay {
	if log == nil {
		log = logging.Nop{}
	}
	return &Autoplay{player: p, log: log}
}

// Listening reports whether interactions should still be forwarded.
func (a *Autoplay) Listening() bool { return !a.playing && a.player != nil }

func (a *Autoplay) Playing() bool { return a.playing }

// Trigger tries to start playback. trigger names the interaction for the log.
func (a *Autoplay) Trigger(trigger string) {
	if !a.Listening() {
		return
	}
	if err := a.player.Play(); err != nil {
		a.log.Debugf("music not started on %s: %v", trigger, err)
		return
	}
	a.playing = true
	a.log.Infof("music started on %s", trigger)
}
