package server

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionLimiterCapsPerIP(t *testing.T) {
	limiter := NewConnectionLimiter(2)

	ok, count := limiter.Acquire("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 1, count)

	ok, count = limiter.Acquire("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 2, count)

	ok, count = limiter.Acquire("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 2, count)

	ok, _ = limiter.Acquire("10.0.0.2")
	assert.True(t, ok, "other addresses are counted separately")

	assert.Equal(t, 1, limiter.Release("10.0.0.1"))
	assert.Equal(t, 0, limiter.Release("10.0.0.1"))
	assert.Equal(t, 0, limiter.Count("10.0.0.1"))

	ok, _ = limiter.Acquire("10.0.0.1")
	assert.True(t, ok)
}

func TestConnectionLimiterConcurrentAcquire(t *testing.T) {
	limiter := NewConnectionLimiter(3)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Acquire("192.168.1.9"); ok {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, accepted)
	assert.Equal(t, 3, limiter.Count("192.168.1.9"))
}

func TestRemoteIP(t *testing.T) {
	assert.Equal(t, "127.0.0.1", RemoteIP(&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 5555}))
	assert.Equal(t, "/tmp/sock", RemoteIP(&net.UnixAddr{Name: "/tmp/sock", Net: "unix"}))
}
