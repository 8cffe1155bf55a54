package gui

// CommandSink accepts console lines typed into the command bar.
type CommandSink interface {
	Enqueue(line string)
}

// lineQueue hands command-bar lines to the simulation loop, which runs them
// between ticks.
type lineQueue struct {
	ch chan string
}

func newLineQueue(size int) *lineQueue {
	if size < 1 {
		size = 16
	}
	return &lineQueue{ch: make(chan string, size)}
}

func (q *lineQueue) Enqueue(line string) {
	if q == nil {
		return
	}
	select {
	case q.ch <- line:
	default:
		// Saturated; typed commands are best effort.
	}
}

func (q *lineQueue) Dequeue() (string, bool) {
	if q == nil {
		return "", false
	}
	select {
	case line := <-q.ch:
		return line, true
	default:
		return "", false
	}
}
