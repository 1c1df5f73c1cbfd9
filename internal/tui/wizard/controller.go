package wizard

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/chamberhq/join/internal/logger"
	"github.com/chamberhq/join/internal/registration"
)

// Step bounds. Steps are numbered from 1 as shown to the user.
const (
	FirstStep = 1
	LastStep  = 8
)

// TransitionMsg commits a pending step change once the transition delay
// has elapsed. Only the message carrying the newest sequence number is
// honored.
type TransitionMsg struct {
	Seq    uint64
	Target int
}

// Controller owns the current step and the form data. All methods run on
// the Bubble Tea update loop.
type Controller struct {
	step     int
	furthest int
	data     registration.FormData
	delay    time.Duration

	seq     uint64
	pending bool
}

// NewController starts at step 1 with an empty form. A delay of zero or
// less commits transitions immediately.
func NewController(delay time.Duration) *Controller {
	return &Controller{
		step:     FirstStep,
		furthest: FirstStep,
		data:     registration.New(),
		delay:    delay,
	}
}

// Step returns the committed step.
func (c *Controller) Step() int { return c.step }

// Furthest returns the highest step ever committed.
func (c *Controller) Furthest() int { return c.furthest }

// Data returns a copy of the form.
func (c *Controller) Data() registration.FormData { return c.data }

// Animating reports whether a transition is waiting for its tick.
func (c *Controller) Animating() bool { return c.pending }

// Update replaces one field. The form is left untouched on error.
func (c *Controller) Update(field registration.Field, value any) error {
	d, err := c.data.With(field, value)
	if err != nil {
		logger.Error("Rejected update of %s: %v", field, err)
		return err
	}
	c.data = d
	return nil
}

// Next requests the following step, saturating at the last one.
func (c *Controller) Next() tea.Cmd {
	return c.request(min(c.step+1, LastStep))
}

// Back requests the previous step, saturating at the first one.
func (c *Controller) Back() tea.Cmd {
	return c.request(max(c.step-1, FirstStep))
}

// GoTo requests an arbitrary step. Targets outside [1,8] are ignored.
func (c *Controller) GoTo(step int) tea.Cmd {
	if step < FirstStep || step > LastStep {
		logger.Warn("Ignoring navigation to out-of-range step %d", step)
		return nil
	}
	return c.request(step)
}

// HandleTransition commits msg if it belongs to the newest request and
// reports whether the step was committed.
func (c *Controller) HandleTransition(msg TransitionMsg) bool {
	if !c.pending || msg.Seq != c.seq {
		logger.Debug("Dropping stale transition %d (current %d)", msg.Seq, c.seq)
		return false
	}
	c.commit(msg.Target)
	return true
}

// Cancel drops the pending transition, if any. Its tick is then stale.
func (c *Controller) Cancel() {
	if !c.pending {
		return
	}
	c.seq++
	c.pending = false
	logger.Debug("Transition cancelled on step %d", c.step)
}

func (c *Controller) request(target int) tea.Cmd {
	if target == c.step && !c.pending {
		return nil
	}

	c.seq++
	if c.delay <= 0 {
		c.commit(target)
		return nil
	}

	c.pending = true
	seq := c.seq
	logger.Debug("Transition %d requested: step %d -> %d", seq, c.step, target)
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return TransitionMsg{Seq: seq, Target: target}
	})
}

func (c *Controller) commit(target int) {
	c.pending = false
	c.step = target
	c.furthest = max(c.furthest, target)
	logger.Debug("Step committed: %d", target)
}
