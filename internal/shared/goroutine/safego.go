// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"stayops/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. A panic is caught and
// logged with its stack trace instead of crashing the process. Used for
// fire-and-forget work such as credential emails after actor creation.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
