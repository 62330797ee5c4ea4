//go:build hamsterdebug

package invariant

const enabled = true
