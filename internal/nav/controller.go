// Package nav switches between an inline menu and a mobile overlay menu based
// on the terminal width.
package nav

import "github.com/verte-zerg/slynxsite/internal/model"

// DefaultBreakpoint is the width, in cells, at which the inline menu is used.
const DefaultBreakpoint = 100

// FallbackMode is used until a width measurement is available.
const FallbackMode = model.Compact

// WidthProbe measures the current width. It is called once at construction.
type WidthProbe func() (int, error)

// Controller owns the layout mode and the open state of the overlay menu.
//
// States are Wide·Closed, Compact·Closed and Compact·Open. Any change of mode
// closes the overlay.
type Controller struct {
	breakpoint int
	width      int
	mode       model.ViewportMode
	measured   bool
	open       bool
	detached   bool
}

// Classify maps a width onto a viewport mode.
func Classify(width, breakpoint int) model.ViewportMode {
	if width < breakpoint {
		return model.Compact
	}
	return model.Wide
}

// NewController builds a controller and takes the initial measurement from
// probe. When probe is nil or fails the controller uses FallbackMode until the
// first Resize.
func NewController(breakpoint int, probe WidthProbe) *Controller {
	if breakpoint < 1 {
		breakpoint = DefaultBreakpoint
	}
	c := &Controller{breakpoint: breakpoint, mode: FallbackMode}
	if probe == nil {
		return c
	}
	width, err := probe()
	if err != nil || width <= 0 {
		return c
	}
	c.mode = Classify(width, breakpoint)
	c.width = width
	c.measured = true
	return c
}

// Resize records a new width sample. It reports whether the mode changed, in
// which case the overlay has been closed. Samples after Detach are ignored.
func (c *Controller) Resize(width int) bool {
	if c.detached || width <= 0 {
		return false
	}
	c.measured = true
	c.width = width
	next := Classify(width, c.breakpoint)
	if next == c.mode {
		return false
	}
	c.mode = next
	c.open = false
	return true
}

// ToggleMenu opens or closes the overlay. It reports whether anything changed;
// in Wide mode it does nothing.
func (c *Controller) ToggleMenu() bool {
	if c.mode != model.Compact || c.detached {
		return false
	}
	c.open = !c.open
	return true
}

// CloseMenu closes the overlay.
func (c *Controller) CloseMenu() {
	c.open = false
}

// Detach stops the controller from reacting to resize samples.
func (c *Controller) Detach() {
	c.detached = true
	c.open = false
}

// Mode returns the current layout mode.
func (c *Controller) Mode() model.ViewportMode {
	return c.mode
}

// Measured reports whether a real width measurement has been seen.
func (c *Controller) Measured() bool {
	return c.measured
}

// OverlayOpen reports whether the overlay is visible. Always false in Wide mode.
func (c *Controller) OverlayOpen() bool {
	return c.mode == model.Compact && c.open
}

// Width returns the last measured width, or 0 before any measurement.
func (c *Controller) Width() int {
	return c.width
}

// Breakpoint returns the configured breakpoint.
func (c *Controller) Breakpoint() int {
	return c.breakpoint
}
