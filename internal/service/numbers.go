package service

import (
	"fmt"
	"sync"
	"time"
)

var (
	numberMu  sync.Mutex
	lastStamp int64
)

// businessNumber builds "<prefix><unix-millis>" identifiers (IN…, OUT…).
// The millisecond stamp is bumped under the lock so two calls in the same
// millisecond never collide within a process.
func businessNumber(prefix string) string {
	numberMu.Lock()
	defer numberMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= lastStamp {
		ms = lastStamp + 1
	}
	lastStamp = ms
	return fmt.Sprintf("%s%d", prefix, ms)
}
