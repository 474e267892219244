package model

const defaultHistorySize = 5

// History keeps the fingerprints of recent generations to spot static states and short cycles
type History struct {
	size   int
	states []string
}

// NewHistory keeps up to size fingerprints; non-positive sizes use the default of 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record appends a fingerprint, dropping the oldest once full
func (h *History) Record(fingerprint string) {
	h.states = append(h.states, fingerprint)
	if len(h.states) > h.size {
		h.states = h.states[1:]
	}
}

// Repeats reports whether fingerprint matches any retained state
func (h *History) Repeats(fingerprint string) bool {
	for _, s := range h.states {
		if s == fingerprint {
			return true
		}
	}
	return false
}

// Len returns the number of retained fingerprints
func (h *History) Len() int {
	return len(h.states)
}

// Reset drops every retained fingerprint
func (h *History) Reset() {
	h.states = nil
}
