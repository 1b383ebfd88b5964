// Package scan — rebuild queue with deduplication.
// Watch mode funnels filesystem events through this queue so a burst
// of writes to the same file produces a single rebuild.
package scan

// Queue is a FIFO of source paths with pending-entry deduplication.
// A path can be re-enqueued after it has been popped, which is what
// lets watch mode rebuild the same file across save cycles.
type Queue struct {
	items   []string
	pending map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		pending: make(map[string]bool),
	}
}

// Add enqueues a path unless it is already waiting.
func (q *Queue) Add(path string) {
	if q.pending[path] {
		return
	}
	q.pending[path] = true
	q.items = append(q.items, path)
}

// HasNext returns true if there are queued paths.
func (q *Queue) HasNext() bool {
	return len(q.items) > 0
}

// Next pops the oldest queued path. The path may be enqueued again
// afterwards.
func (q *Queue) Next() string {
	path := q.items[0]
	q.items = q.items[1:]
	delete(q.pending, path)
	return path
}

// Len returns the number of queued paths.
func (q *Queue) Len() int {
	return len(q.items)
}
