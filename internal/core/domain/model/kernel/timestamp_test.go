package kernel_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := kernel.TimestampFromMillis(1700000000123)

	assert.Equal(t, int64(1700000000123), ts.Millis())
	assert.Equal(t, ts.Millis(), kernel.TimestampFromTime(ts.Time()).Millis())
}

func TestTimestamp_Ordering(t *testing.T) {
	earlier := kernel.TimestampFromMillis(1000)
	later := kernel.TimestampFromMillis(2000)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestTimestamp_Age(t *testing.T) {
	created := kernel.TimestampFromMillis(1000)
	now := time.UnixMilli(31000)

	assert.Equal(t, 30*time.Second, created.Age(now))
}

func TestTimestampNow(t *testing.T) {
	before := time.Now().UnixMilli()
	ts := kernel.TimestampNow()
	after := time.Now().UnixMilli()

	assert.GreaterOrEqual(t, ts.Millis(), before)
	assert.LessOrEqual(t, ts.Millis(), after)
}
