package catalog

import (
	"errors"
	"sync"
	"time"
)

var ErrIndexOutOfRange = errors.New("индекс баннера вне диапазона")

// Rotator держит индекс текущего баннера и листает его по таймеру.
// При одном баннере или пустом наборе индекс не двигается
type Rotator struct {
	mu    sync.Mutex
	index int
	size  int

	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

func NewRotator(interval time.Duration) *Rotator {
	return &Rotator{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start запускает автопролистывание. Останавливается через Stop
func (r *Rotator) Start() {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Advance()
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *Rotator) Stop() {
	r.once.Do(func() {
		close(r.stop)
	})
}

// Advance передвигает индекс на следующий баннер с переходом по кругу
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.size <= 1 {
		return
	}
	r.index = (r.index + 1) % r.size
}

// Resize сбрасывает индекс, когда набор баннеров изменил размер
func (r *Rotator) Resize(size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if size != r.size {
		r.size = size
		r.index = 0
	}
}

// Select выставляет индекс вручную, перебивая автопролистывание
func (r *Rotator) Select(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= r.size {
		return ErrIndexOutOfRange
	}
	r.index = index
	return nil
}

func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}
