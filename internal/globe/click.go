package globe

import "time"

// DefaultClickWindow is how long a click stays eligible to select.
const DefaultClickWindow = 100 * time.Millisecond

type ClickState int

const (
	ClickIdle ClickState = iota
	ClickArmed
)

func (s ClickState) String() string {
	if s == ClickArmed {
		return "armed"
	}
	return "idle"
}

// Click is the {Idle, Armed(expiry)} machine, advanced once per frame.
type Click struct {
	window time.Duration
	state  ClickState
	expiry time.Time
}

func NewClick(window time.Duration) *Click {
	if window <= 0 {
		window = DefaultClickWindow
	}
	return &Click{window: window}
}

// Arm opens the window at now. Arming while armed restarts the window.
func (c *Click) Arm(now time.Time) {
	c.state = ClickArmed
	c.expiry = now.Add(c.window)
}

// Advance expires the window if now has reached it and returns the state.
func (c *Click) Advance(now time.Time) ClickState {
	if c.state == ClickArmed && !now.Before(c.expiry) {
		c.state = ClickIdle
	}
	return c.state
}

// Disarm drops any pending click.
func (c *Click) Disarm() {
	c.state = ClickIdle
}

func (c *Click) State() ClickState { return c.state }
