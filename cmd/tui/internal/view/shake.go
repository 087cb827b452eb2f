package view

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const shakeFPS = 30

type shakeFrameMsg struct {
	key   int
	frame int
}

// Shake moves a view horizontally along a sine wave for a fixed duration.
// It implements tip.Effect: each Trigger restarts the animation under a new key,
// and frames still in flight for an older key are dropped.
type Shake struct {
	interval time.Duration
	frames   int
	travel   int
	count    int

	key     int
	frame   int
	active  bool
	pending bool
}

func NewShake(duration time.Duration, travel, count int) *Shake {
	frames := max(1, int(duration*shakeFPS/time.Second))

	return &Shake{
		interval: duration / time.Duration(frames),
		frames:   frames,
		travel:   travel,
		count:    count,
	}
}

func (s *Shake) Trigger(counter int) {
	s.key = counter
	s.frame = 0
	s.active = true
	s.pending = true
}

// Start returns the first frame tick when a trigger is waiting, nil otherwise.
func (s *Shake) Start() tea.Cmd {
	if !s.pending {
		return nil
	}

	s.pending = false

	return s.tick(s.key, 1)
}

func (s *Shake) Update(msg shakeFrameMsg) tea.Cmd {
	if !s.active || msg.key != s.key {
		return nil
	}

	if msg.frame >= s.frames {
		s.active = false
		s.frame = 0

		return nil
	}

	s.frame = msg.frame

	return s.tick(msg.key, msg.frame+1)
}

func (s *Shake) Active() bool { return s.active }

// Travel is the largest offset Offset can return in either direction.
func (s *Shake) Travel() int { return s.travel }

// Offset is the current horizontal displacement in columns.
func (s *Shake) Offset() int {
	if !s.active {
		return 0
	}

	progress := float64(s.frame) / float64(s.frames)

	return int(math.Round(float64(s.travel) * math.Sin(progress*math.Pi*float64(s.count))))
}

func (s *Shake) tick(key, frame int) tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return shakeFrameMsg{key: key, frame: frame}
	})
}
