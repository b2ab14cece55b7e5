// Package tracer implements advisory training-progress reporting: a
// terminal progress bar a trainer driver can update once per episode or
// timestep. Reporting is advisory only: nothing in package trainer
// depends on it, and a caller that never touches a Tracer gets
// identical training behavior.
package tracer

import (
	"fmt"
	"strings"
	"time"
)

// Tracer reports progress toward a known total out of Max steps.
type Tracer struct {
	width   int
	max     int
	current int
	start   time.Time
}

// New returns a Tracer that will reach 100% after max calls to
// Increment, rendering a bar width characters wide.
func New(width, max int) *Tracer {
	return &Tracer{width: width, max: max, start: time.Now()}
}

// Increment advances the tracer by one step and redraws the bar.
func (t *Tracer) Increment() {
	if t.current < t.max {
		t.current++
	}
	t.render()
}

// Done marks the tracer as complete (forces the bar to 100%) and
// writes a trailing newline.
func (t *Tracer) Done() {
	t.current = t.max
	t.render()
	fmt.Println()
}

func (t *Tracer) render() {
	frac := float64(t.current) / float64(t.max)
	filled := int(frac * float64(t.width))

	var bar strings.Builder
	bar.WriteByte('|')
	for i := 0; i < t.width; i++ {
		if i < filled {
			bar.WriteByte('#')
		} else {
			bar.WriteByte(' ')
		}
	}
	bar.WriteByte('|')
	fmt.Printf("\r%s %6.2f%% elapsed: %v", bar.String(), frac*100, time.Since(t.start).Round(time.Second))
}
