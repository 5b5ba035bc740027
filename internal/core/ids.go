package core

// ids.go generates the two identifiers every record carries: an opaque
// unique id and a human-facing sequential tracking number.
//
// Ids are UUIDs, so many can be requested in the same synchronous batch
// without collision. Tracking numbers are "ATS" + integer, strictly
// increasing in assignment order; the store holds the high-water mark so a
// bulk batch reserves a contiguous block instead of recomputing a base from
// the (unchanged) collection size after every insertion.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// trackingPrefix is the human-facing prefix on every tracking number.
const trackingPrefix = "ATS"

// trackingFloor is the numeric starting point when the store is empty: the
// first record ever assigned gets ATS8001.
const trackingFloor = 8000

// newID returns an opaque identifier unique among all ids issued in this
// process, including within a single bulk batch.
func newID() string {
	return uuid.New().String()
}

// formatTracking renders a numeric suffix as a tracking number.
func formatTracking(n int) string {
	return fmt.Sprintf("%s%d", trackingPrefix, n)
}

// parseTracking extracts the numeric suffix from a tracking number.
// Returns false for values that do not look like ATS<integer>.
func parseTracking(s string) (int, bool) {
	rest, ok := strings.CutPrefix(s, trackingPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
