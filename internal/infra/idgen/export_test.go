//go:build unit

package idgen

import "time"

// Timestamp recovers the issue time encoded in id.
func Timestamp(id int64) time.Time {
	return time.Unix((id>>countBits)+EpochSeconds, 0).UTC()
}

// Sequence recovers the daily counter value encoded in id.
func Sequence(id int64) int64 {
	return id & (1<<countBits - 1)
}
