package utils

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)

	// Acquire two permits
	sem.Acquire()
	sem.Acquire()

	// Try to acquire a third permit in a goroutine
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sem.Acquire()
		sem.Release()
	}()

	// Wait for a short time to see if the goroutine is blocked
	time.Sleep(100 * time.Millisecond)

	// Release a permit
	sem.Release()

	// Wait for the goroutine to finish
	wg.Wait()
}

func TestSemaphoreMinimumOnePermit(t *testing.T) {
	if got := NewSemaphore(0).Cap(); got != 1 {
		t.Errorf("Expected 1 permit, got %d", got)
	}
}

func TestSemaphoreDoBoundsConcurrency(t *testing.T) {
	sem := NewSemaphore(3)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem.Do(func() {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
			})
		}()
	}
	wg.Wait()

	if peak > 3 {
		t.Errorf("Expected at most 3 concurrent runs, got %d", peak)
	}
}
