package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewGracefulServerDefaultsTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), 8080, 0)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestShutdownManagerRunsAllFunctions(t *testing.T) {
	sm := NewShutdownManager()
	var order []string

	sm.Register(func(context.Context) error {
		order = append(order, "db")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "cache")
		return errors.New("cache close failed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, "queue")
		return nil
	})

	sm.Shutdown(context.Background())

	// a failing component must not stop the rest from closing
	assert.Equal(t, []string{"db", "cache", "queue"}, order)
}

func TestShutdownManagerConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager()
	var mu sync.Mutex
	var wg sync.WaitGroup
	count := 0

	// registration happens during single-threaded startup in practice,
	// but shutdown must still run everything that was registered
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			sm.Register(func(context.Context) error {
				count++
				return nil
			})
			mu.Unlock()
		}()
	}
	wg.Wait()

	sm.Shutdown(context.Background())
	assert.Equal(t, 10, count)
}
