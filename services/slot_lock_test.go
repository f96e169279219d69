package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotLocks_SerializesSameKey(t *testing.T) {
	locks := newSlotLocks()

	unlock := locks.Lock("T1")
	acquired := make(chan struct{})
	go func() {
		release := locks.Lock("T1")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock on the same key must block")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired")
	}
}

func TestSlotLocks_IndependentKeys(t *testing.T) {
	locks := newSlotLocks()
	unlockA := locks.Lock("A")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		locks.Lock("B")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("different keys must not block each other")
	}
}

func TestSlotLocks_ReleasesEntries(t *testing.T) {
	locks := newSlotLocks()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("T1")()
		}()
	}
	wg.Wait()

	assert.Zero(t, locks.size())
}
