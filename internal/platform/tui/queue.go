package tui

import "github.com/vovakirdan/viper/internal/core"

// keyQueueSize bounds the typeahead buffer.
const keyQueueSize = 16

// keyQueue buffers keystrokes between ticks. Each tick takes at most one.
// Keys arriving while the buffer is full are dropped.
type keyQueue struct {
	keys []core.KeyPress
}

func (q *keyQueue) Push(k core.KeyPress) bool {
	if len(q.keys) >= keyQueueSize {
		return false
	}
	q.keys = append(q.keys, k)
	return true
}

// Pop returns the oldest key, or core.NoKey when empty.
func (q *keyQueue) Pop() core.KeyPress {
	if len(q.keys) == 0 {
		return core.NoKey
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k
}

func (q *keyQueue) Len() int {
	return len(q.keys)
}

func (q *keyQueue) Reset() {
	q.keys = q.keys[:0]
}
