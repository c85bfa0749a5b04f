//go:build !catclustering_debug

package catclustering

// debugAssertMonotone is a no-op outside of catclustering_debug builds; see
// assert_debug.go.
func debugAssertMonotone(oldDistance, newDistance float64) {}
