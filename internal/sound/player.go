// Package sound plays short notification sounds through external programs.
package sound

import (
	"os/exec"

	"samtalsstod/internal/config"
	"samtalsstod/internal/logger"
)

// Command is one external invocation.
type Command struct {
	Name string
	Args []string
}

// Starter launches a command without waiting for it to finish.
type Starter func(cmd Command) error

// Player tries the primary command and, if it cannot be started, the fallback
// once. Nothing is awaited and every failure is swallowed.
type Player struct {
	primary  Command
	fallback Command
	start    Starter
	logger   logger.Logger
	enabled  bool
}

func NewPlayer(cfg config.Config, log logger.Logger) *Player {
	file := cfg.SoundFile
	if file == "" {
		file = config.DefaultSoundFile
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Player{
		primary:  Command{Name: "paplay", Args: []string{file}},
		fallback: Command{Name: "pactl", Args: []string{"play-sample", "bell"}},
		start:    StartDetached,
		logger:   log,
		enabled:  cfg.Sound,
	}
}

// SetStarter replaces how commands are launched.
func (p *Player) SetStarter(start Starter) {
	if start != nil {
		p.start = start
	}
}

// Play reports whether either command started.
func (p *Player) Play() bool {
	if !p.enabled {
		return false
	}

	err := p.start(p.primary)
	if err == nil {
		return true
	}
	p.logger.Debug("Sound", "primary playback failed, trying fallback", map[string]interface{}{
		"command": p.primary.Name,
		"error":   err.Error(),
	})

	if err := p.start(p.fallback); err != nil {
		p.logger.Debug("Sound", "fallback playback failed", map[string]interface{}{
			"command": p.fallback.Name,
			"error":   err.Error(),
		})
		return false
	}
	return true
}

// StartDetached starts cmd with no stdio and reaps it in the background.
func StartDetached(cmd Command) error {
	// nil stdio is connected to the null device
	c := exec.Command(cmd.Name, cmd.Args...)
	if err := c.Start(); err != nil {
		return err
	}
	go c.Wait()
	return nil
}
