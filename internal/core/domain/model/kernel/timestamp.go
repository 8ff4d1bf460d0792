package kernel

import "time"

// Timestamp is a wall-clock instant with millisecond precision, the
// granularity every status event and order creation time is recorded at.
// Persisted as the raw millisecond count so comparisons are plain integer
// comparisons.
//
// Millisecond precision alone does not totally order concurrent events;
// the status ledger adds a monotonic sequence number as tiebreak.
type Timestamp struct {
	millis int64
}

// TimestampNow captures the current instant at millisecond precision.
func TimestampNow() Timestamp {
	return Timestamp{millis: time.Now().UnixMilli()}
}

// TimestampFromMillis restores a Timestamp from its persisted form.
func TimestampFromMillis(ms int64) Timestamp {
	return Timestamp{millis: ms}
}

// TimestampFromTime converts a time.Time, truncating to milliseconds.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{millis: t.UnixMilli()}
}

// Millis returns the instant as milliseconds since the Unix epoch.
func (t Timestamp) Millis() int64 {
	return t.millis
}

// Time converts back to a time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(t.millis)
}

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.millis < other.millis
}

// Age returns the duration elapsed between t and now.
func (t Timestamp) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-t.millis) * time.Millisecond
}
