package invoice

import (
	"strconv"
	"sync"
	"time"
)

const numberPrefix = "INV"

// Numberer hands out invoice identifiers of the form INV<unix millis>. Two calls inside
// the same millisecond get consecutive values, so identifiers never repeat within a process.
type Numberer struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewNumberer() *Numberer {
	return &Numberer{now: time.Now}
}

func (n *Numberer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	ms := n.now().UnixMilli()
	if ms <= n.last {
		ms = n.last + 1
	}
	n.last = ms
	return numberPrefix + strconv.FormatInt(ms, 10)
}
