// Package pipeline connects the game to the screen: an update loop that
// produces frames, a render loop that paints them, and the ordered queue
// between the two.
package pipeline

import (
	"errors"
	"sync"

	"github.com/vovakirdan/term-invaders/internal/core"
)

var (
	// ErrClosed is returned by Send after the producer closed the queue.
	ErrClosed = errors.New("pipeline: send on closed queue")
	// ErrReceiverGone is returned by Send once the consumer has stopped reading.
	ErrReceiverGone = errors.New("pipeline: receiver gone")
)

// Queue is an unbounded FIFO of frames with one producer and one consumer.
// Send never blocks, so a slow terminal cannot stall the update loop; Recv
// blocks until a frame arrives or the queue is closed and drained. Frames are
// delivered in send order, none dropped or duplicated.
type Queue struct {
	mu        sync.Mutex
	frames    []core.Frame
	head      int
	closed    bool
	abandoned bool
	ready     chan struct{} // holds one token while frames are pending or the queue is closed
	sent      uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		ready: make(chan struct{}, 1),
	}
}

// Send appends a frame. The queue takes ownership of the value.
func (q *Queue) Send(f core.Frame) error {
	q.mu.Lock()
	switch {
	case q.abandoned:
		q.mu.Unlock()
		return ErrReceiverGone
	case q.closed:
		q.mu.Unlock()
		return ErrClosed
	}
	q.frames = append(q.frames, f)
	q.sent++
	q.mu.Unlock()

	q.signal()
	return nil
}

// Recv returns the oldest pending frame. It blocks while the queue is empty
// and open. ok is false once the queue is closed and every frame has been
// received; that is the normal end of the stream, not an error.
func (q *Queue) Recv() (f core.Frame, ok bool) {
	for {
		q.mu.Lock()
		if q.head < len(q.frames) {
			f = q.frames[q.head]
			q.head++
			if q.head == len(q.frames) {
				// Drained: reuse the backing array
				q.frames = q.frames[:0]
				q.head = 0
			}
			pending := len(q.frames) > 0
			q.mu.Unlock()
			if pending {
				q.signal()
			}
			return f, true
		}
		if q.closed {
			q.mu.Unlock()
			q.signal() // let a later Recv see the close too
			return core.Frame{}, false
		}
		q.mu.Unlock()

		<-q.ready
	}
}

// Close marks the end of the stream. Frames already sent are still delivered.
// Safe to call multiple times.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// Abandon is called by the consumer when it stops reading. Pending frames are
// discarded and later sends fail with ErrReceiverGone.
func (q *Queue) Abandon() {
	q.mu.Lock()
	q.abandoned = true
	q.frames = nil
	q.head = 0
	q.mu.Unlock()
}

// Len returns the number of frames waiting to be received.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames) - q.head
}

// Sent returns the number of frames accepted by Send.
func (q *Queue) Sent() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.sent
}

// signal leaves a wake-up token for Recv without ever blocking.
func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
