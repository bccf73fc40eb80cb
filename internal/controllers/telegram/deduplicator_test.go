package telegram

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicatorTryAcquire(t *testing.T) {
	d := NewRequestDeduplicator()

	assert.True(t, d.TryAcquire(100, "cb_abc", time.Minute))
	// Повтор в пределах TTL отсекается.
	assert.False(t, d.TryAcquire(100, "cb_abc", time.Minute))

	// Другой чат и другой ключ не пересекаются.
	assert.True(t, d.TryAcquire(200, "cb_abc", time.Minute))
	assert.True(t, d.TryAcquire(100, "cb_def", time.Minute))
}

func TestDeduplicatorExpiry(t *testing.T) {
	d := NewRequestDeduplicator()

	assert.True(t, d.TryAcquire(100, "cb_abc", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, d.TryAcquire(100, "cb_abc", time.Minute))
}

func (d *RequestDeduplicator) entryCount() int {
	count := 0
	d.locks.Range(func(key, value interface{}) bool {
		count++
		return true
	})
	return count
}

// Каждый callback-запрос приносит уникальный ключ, поэтому без фоновой
// очистки истёкшие записи копились бы в памяти бессрочно.
func TestDeduplicatorCleanupReclaimsExpiredEntries(t *testing.T) {
	d := NewRequestDeduplicator()

	const keys = 1000
	for i := 0; i < keys; i++ {
		require.True(t, d.TryAcquire(int64(i), fmt.Sprintf("cb_%d", i), time.Nanosecond))
	}
	require.Equal(t, keys, d.entryCount())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		d.Cleanup(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return d.entryCount() == 0
	}, time.Second, 10*time.Millisecond, "истёкшие записи должны быть убраны циклом очистки")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("очистка не остановилась после отмены контекста")
	}
}
