package utils

// Semaphore bounds how many goroutines run a section at once.
type Semaphore struct {
	ch chan struct{}
}

func NewSemaphore(max int) *Semaphore {
	if max < 1 {
		max = 1
	}
	return &Semaphore{
		ch: make(chan struct{}, max),
	}
}

func (s *Semaphore) Acquire() {
	s.ch <- struct{}{}
}

func (s *Semaphore) Release() {
	<-s.ch
}

// Do runs fn while holding a permit.
func (s *Semaphore) Do(fn func()) {
	s.Acquire()
	defer s.Release()
	fn()
}

// Cap returns the number of permits.
func (s *Semaphore) Cap() int {
	return cap(s.ch)
}
