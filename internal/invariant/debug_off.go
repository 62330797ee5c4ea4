//go:build !hamsterdebug

package invariant

const enabled = false
