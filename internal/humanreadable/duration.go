package humanreadable

import (
	"fmt"
	"time"
)

// Elapsed prints a duration as 1h2m3s, or in milliseconds under a second.
type Elapsed time.Duration

func (e Elapsed) String() string {
	d := time.Duration(e)
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	var h, m, s string

	total := int64(d / time.Second)
	if ts := total % 60; ts > 0 {
		s = fmt.Sprintf("%ds", ts)
	}

	if tm := (total / 60) % 60; tm > 0 {
		m = fmt.Sprintf("%dm", tm)
	}

	if th := total / 3600; th > 0 {
		h = fmt.Sprintf("%dh", th)
	}

	return h + m + s
}
