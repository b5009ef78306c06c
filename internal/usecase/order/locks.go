package usecase

import "sync"

// orderLocks hands out one mutex per order id so the read-check-write
// sequence in CompleteStep is serialized per order. Mutexes are kept for
// the process lifetime; the map grows with the number of distinct orders
// touched, which is bounded by the order table.
type orderLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *orderLocks) forOrder(orderID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[orderID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[orderID] = m
	}
	return m
}
