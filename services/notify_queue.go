package services

import (
	"context"
	"sync"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
)

const (
	notifyTimeout   = 15 * time.Second
	notifyQueueSize = 128
)

// notifyQueue delivers status changes one at a time, in the order they were
// committed. close drains what is already queued.
type notifyQueue struct {
	notifier DepositNotifier
	ch       chan models.Deposit
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func newNotifyQueue(notifier DepositNotifier) *notifyQueue {
	q := &notifyQueue{
		notifier: notifier,
		ch:       make(chan models.Deposit, notifyQueueSize),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *notifyQueue) push(d models.Deposit) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		logger.Warn("Deposit notification dropped after shutdown", "deposit_id", d.ID)
		return
	}
	q.ch <- d
}

func (q *notifyQueue) run() {
	defer q.wg.Done()
	for d := range q.ch {
		q.send(d)
	}
}

func (q *notifyQueue) send(d models.Deposit) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := q.notifier.DepositStatusChanged(ctx, d); err != nil {
		logger.Warn("Deposit notification failed", "deposit_id", d.ID, "error", err)
	}
}

func (q *notifyQueue) close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	q.wg.Wait()
}
