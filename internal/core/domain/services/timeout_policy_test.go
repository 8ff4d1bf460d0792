package services_test

import (
	"sync"
	"testing"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeoutPolicy(t *testing.T) {
	t.Run("creates policy with window", func(t *testing.T) {
		p, err := services.NewTimeoutPolicy(30 * time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, p.Timeout())
	})

	t.Run("rejects non-positive window", func(t *testing.T) {
		_, err := services.NewTimeoutPolicy(0)
		require.Error(t, err)

		_, err = services.NewTimeoutPolicy(-time.Second)
		require.Error(t, err)
	})
}

func TestTimeoutPolicy_Expired(t *testing.T) {
	p, _ := services.NewTimeoutPolicy(30 * time.Minute)
	createdAt := kernel.TimestampFromMillis(0)

	t.Run("within window", func(t *testing.T) {
		now := time.UnixMilli(29 * 60 * 1000)
		assert.False(t, p.Expired(createdAt, now))
	})

	t.Run("exactly at window boundary is not expired", func(t *testing.T) {
		now := time.UnixMilli(30 * 60 * 1000)
		assert.False(t, p.Expired(createdAt, now))
	})

	t.Run("past window", func(t *testing.T) {
		now := time.UnixMilli(30*60*1000 + 1)
		assert.True(t, p.Expired(createdAt, now))
	})
}

func TestTimeoutPolicy_SetTimeout(t *testing.T) {
	p, _ := services.NewTimeoutPolicy(30 * time.Minute)

	require.NoError(t, p.SetTimeout(time.Second))
	assert.Equal(t, time.Second, p.Timeout())

	createdAt := kernel.TimestampFromMillis(0)
	assert.True(t, p.Expired(createdAt, time.UnixMilli(1500)))

	require.Error(t, p.SetTimeout(0))
	assert.Equal(t, time.Second, p.Timeout())
}

func TestTimeoutPolicy_ConcurrentAccess(t *testing.T) {
	p, _ := services.NewTimeoutPolicy(30 * time.Minute)
	createdAt := kernel.TimestampNow()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = p.SetTimeout(time.Minute)
		}()
		go func() {
			defer wg.Done()
			_ = p.Expired(createdAt, time.Now())
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Minute, p.Timeout())
}
