// Package invariant reports logic defects found at runtime. Builds tagged
// hamsterdebug panic on a violation; other builds log it and carry on.
package invariant

import (
	"fmt"
	"log/slog"
)

// Check reports a violation when cond is false.
func Check(cond bool, format string, args ...any) {
	if cond {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if enabled {
		panic("invariant violated: " + msg)
	}
	slog.Error("invariant violated", "detail", msg)
}
