// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs a panic with its stack instead of crashing.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover is meant to be deferred; it logs a recovered panic under name.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
