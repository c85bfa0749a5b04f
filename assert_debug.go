//go:build catclustering_debug

package catclustering

import "fmt"

// debugAssertMonotone enforces the lazy-heap precondition documented on
// Summary.Distance: refreshing a stale Link's distance must never produce
// a value lower than the one it replaces. This check only runs in builds
// tagged catclustering_debug, since it revisits a comparison the hot path
// already computed once per refresh.
func debugAssertMonotone(oldDistance, newDistance float64) {
	if newDistance < oldDistance {
		panic(fmt.Sprintf(
			"catclustering: monotone-union precondition violated: refreshed distance %v is less than prior distance %v",
			newDistance, oldDistance))
	}
}
