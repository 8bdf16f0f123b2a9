package tui

// CueLog records sound cues from the game. The terminal has no audio; the
// music lab line shows the most recent cues instead.
type CueLog struct {
	recent []string
	size   int
	counts map[string]int
}

// NewCueLog creates a log remembering the last size cues.
func NewCueLog(size int) *CueLog {
	return &CueLog{
		size:   max(1, size),
		counts: make(map[string]int),
	}
}

// Cue implements astrobreak.CueSink.
func (c *CueLog) Cue(name string) {
	c.counts[name]++
	c.recent = append(c.recent, name)
	if len(c.recent) > c.size {
		c.recent = c.recent[len(c.recent)-c.size:]
	}
}

// Recent returns the latest cues, oldest first.
func (c *CueLog) Recent() []string {
	return c.recent
}

// Count returns how many times a cue has fired.
func (c *CueLog) Count(name string) int {
	return c.counts[name]
}
