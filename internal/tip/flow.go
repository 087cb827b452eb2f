package tip

import (
	"log/slog"

	"github.com/google/uuid"
)

// Screen is the surface currently in front of the user.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenCustomEntry
	ScreenConfirming
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main"
	case ScreenCustomEntry:
		return "CustomEntry"
	case ScreenConfirming:
		return "Confirming"
	}

	return "Unknown"
}

// State is a snapshot of the tip selection flow.
// An empty ValidationError means no error is shown.
type State struct {
	ConfirmationVisible bool
	CustomInputVisible  bool
	CustomTipText       string
	ValidationError     string
	ShakeTrigger        int
}

func (s State) Screen() Screen {
	switch {
	case s.ConfirmationVisible:
		return ScreenConfirming
	case s.CustomInputVisible:
		return ScreenCustomEntry
	}

	return ScreenMain
}

//go:generate mockgen -source=flow.go -destination=effect_mock.go -package=tip

// Effect is a time-bounded visual effect keyed by a monotonic counter.
// Trigger is called with the new counter value each time the effect should play.
type Effect interface {
	Trigger(counter int)
}

type noEffect struct{}

func (noEffect) Trigger(int) {}

type Option func(*Flow)

// WithMinimum overrides the custom tip floor.
func WithMinimum(minimum int) Option {
	return func(f *Flow) {
		f.minimum = minimum
	}
}

// WithEffect sets the effect played on every rejected submission.
func WithEffect(e Effect) Option {
	return func(f *Flow) {
		if e != nil {
			f.effect = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.log = l
		}
	}
}

// Flow holds the tip selection state and notifies subscribers after every change.
// It is driven from a single event loop and is not safe for concurrent use.
type Flow struct {
	state   State
	minimum int
	effect  Effect
	log     *slog.Logger

	subs   map[int]func(State)
	nextID int
}

func NewFlow(opts ...Option) *Flow {
	f := &Flow{
		minimum: DefaultMinimum,
		effect:  noEffect{},
		log:     slog.Default(),
		subs:    make(map[int]func(State)),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.log = f.log.With("session", uuid.NewString())

	return f
}

func (f *Flow) State() State { return f.state }

func (f *Flow) Screen() Screen { return f.state.Screen() }

func (f *Flow) Minimum() int { return f.minimum }

// Subscribe registers fn to run after each state change and returns a func removing it.
func (f *Flow) Subscribe(fn func(State)) func() {
	id := f.nextID
	f.nextID++
	f.subs[id] = fn

	return func() {
		delete(f.subs, id)
	}
}

// SelectFixed acknowledges one of the preset percentages. The percentage is
// only logged; nothing downstream consumes it.
func (f *Flow) SelectFixed(percent int) {
	if f.Screen() != ScreenMain {
		f.log.Debug("ignoring fixed tip outside main screen", "percent", percent, "screen", f.Screen())
		return
	}

	f.state.ConfirmationVisible = true
	f.log.Debug("fixed tip selected", "percent", percent)
	f.notify()
}

func (f *Flow) OpenCustom() {
	if f.Screen() != ScreenMain {
		return
	}

	f.state.CustomInputVisible = true
	f.log.Debug("custom entry opened")
	f.notify()
}

// EditText replaces the custom field contents. No masking is applied.
func (f *Flow) EditText(text string) {
	if f.Screen() != ScreenCustomEntry || f.state.CustomTipText == text {
		return
	}

	f.state.CustomTipText = text
	f.notify()
}

// Submit validates the custom field. The field is cleared whatever the outcome.
func (f *Flow) Submit() Outcome {
	if f.Screen() != ScreenCustomEntry {
		return OutcomeNone
	}

	_, err := Validate(f.state.CustomTipText, f.minimum)
	outcome := Classify(err)

	f.state.CustomTipText = ""

	if outcome != OutcomeAccepted {
		f.state.ValidationError = Message(outcome, f.minimum)
		f.state.ShakeTrigger++
		f.log.Debug("custom tip rejected", "outcome", outcome, "shake", f.state.ShakeTrigger)
		f.notify()
		f.effect.Trigger(f.state.ShakeTrigger)

		return outcome
	}

	f.state.ValidationError = ""
	f.state.CustomInputVisible = false
	f.state.ConfirmationVisible = true
	f.log.Debug("custom tip accepted")
	f.notify()

	return outcome
}

// DismissCustom closes the sheet without submitting.
func (f *Flow) DismissCustom() {
	if f.Screen() != ScreenCustomEntry {
		return
	}

	f.state.CustomInputVisible = false
	f.state.ValidationError = ""
	f.state.CustomTipText = ""
	f.log.Debug("custom entry dismissed")
	f.notify()
}

func (f *Flow) DismissConfirmation() {
	if f.Screen() != ScreenConfirming {
		return
	}

	f.state.ConfirmationVisible = false
	f.log.Debug("confirmation dismissed")
	f.notify()
}

func (f *Flow) notify() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}
