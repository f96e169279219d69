package services

import "sync"

// slotLocks serializes the join check-and-insert sequence per tournament id
// within this process. It does not coordinate multiple server processes.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

type slotLock struct {
	mu      sync.Mutex
	waiters int
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*slotLock)}
}

// Lock blocks until the tournament's section is free and returns its release func.
func (s *slotLocks) Lock(tournamentID string) func() {
	s.mu.Lock()
	l, ok := s.locks[tournamentID]
	if !ok {
		l = &slotLock{}
		s.locks[tournamentID] = l
	}
	l.waiters++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.waiters--
		if l.waiters == 0 {
			delete(s.locks, tournamentID)
		}
		s.mu.Unlock()
	}
}

func (s *slotLocks) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
