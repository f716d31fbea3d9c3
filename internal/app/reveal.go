package app

// Reveal tracks how many raster rows, counted from the north edge, are
// visible in the preview.
type Reveal struct {
	rows  int
	shown int
}

// NewReveal starts a reveal over rows rows with nothing shown.
func NewReveal(rows int) *Reveal {
	if rows < 0 {
		rows = 0
	}
	return &Reveal{rows: rows}
}

// Advance shows n more rows and reports whether the raster is complete.
func (r *Reveal) Advance(n int) bool {
	if n > 0 {
		r.shown += n
		if r.shown > r.rows {
			r.shown = r.rows
		}
	}
	return r.Done()
}

// Restart hides every row again.
func (r *Reveal) Restart() { r.shown = 0 }

// Shown returns the number of visible rows.
func (r *Reveal) Shown() int { return r.shown }

// Done reports whether every row is visible.
func (r *Reveal) Done() bool { return r.shown >= r.rows }
