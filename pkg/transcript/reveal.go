package transcript

// Reveal tracks the typewriter progress of one assistant reply. Progress
// is counted in runes so multi-byte characters are never split.
type Reveal struct {
	ID       uint64
	target   []rune
	revealed int
}

// Target returns the full reply text.
func (r Reveal) Target() string {
	return string(r.target)
}

// Len returns the number of characters to reveal.
func (r Reveal) Len() int {
	return len(r.target)
}

// Revealed returns how many characters are visible.
func (r Reveal) Revealed() int {
	return r.revealed
}

// Visible returns the revealed prefix.
func (r Reveal) Visible() string {
	return string(r.target[:r.revealed])
}

// Done reports whether the whole reply is visible.
func (r Reveal) Done() bool {
	return r.revealed >= len(r.target)
}

func (r *Reveal) advance() {
	if r.revealed < len(r.target) {
		r.revealed++
	}
}
