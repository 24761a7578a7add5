// Package timer provides a delayed-task scheduler whose tasks run on the
// caller's goroutine, either when a UI loop delivers the matching tick or
// when a test advances a virtual clock.
package timer

import (
	"sort"
	"time"
)

// Cancel stops a scheduled task if it has not run yet. Calling it more than
// once is a no-op.
type Cancel func()

// Scheduler schedules a task to run after delay.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) Cancel
}

// Ticket identifies a scheduled task handed to an event loop.
type Ticket struct {
	ID    uint64
	Delay time.Duration
}

type entry struct {
	due  time.Duration
	task func()
}

// Queue is a Scheduler that never starts goroutines. It is not safe for
// concurrent use; all calls must come from one loop.
type Queue struct {
	clock  time.Duration
	nextID uint64
	tasks  map[uint64]entry
	fresh  []Ticket
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{tasks: make(map[uint64]entry)}
}

// Schedule registers task to run delay from now.
func (q *Queue) Schedule(delay time.Duration, task func()) Cancel {
	if delay < 0 {
		delay = 0
	}
	q.nextID++
	id := q.nextID
	q.tasks[id] = entry{due: q.clock + delay, task: task}
	q.fresh = append(q.fresh, Ticket{ID: id, Delay: delay})
	return func() { delete(q.tasks, id) }
}

// Flush returns the tickets scheduled since the last Flush.
func (q *Queue) Flush() []Ticket {
	out := q.fresh
	q.fresh = nil
	return out
}

// Fire runs the task for id and reports whether it was still pending.
func (q *Queue) Fire(id uint64) bool {
	e, ok := q.tasks[id]
	if !ok {
		return false
	}
	delete(q.tasks, id)
	e.task()
	return true
}

// Advance moves the virtual clock forward by d and runs every task that
// became due, in due order. Tasks scheduled by running tasks are honored if
// they fall due within the same window.
func (q *Queue) Advance(d time.Duration) {
	target := q.clock + d
	for {
		id, e, ok := q.nextDue(target)
		if !ok {
			break
		}
		q.clock = e.due
		delete(q.tasks, id)
		e.task()
	}
	q.clock = target
}

// Pending returns the number of tasks that have not run or been cancelled.
func (q *Queue) Pending() int {
	return len(q.tasks)
}

func (q *Queue) nextDue(limit time.Duration) (uint64, entry, bool) {
	ids := make([]uint64, 0, len(q.tasks))
	for id, e := range q.tasks {
		if e.due <= limit {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, entry{}, false
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := q.tasks[ids[i]], q.tasks[ids[j]]
		if a.due != b.due {
			return a.due < b.due
		}
		return ids[i] < ids[j]
	})
	return ids[0], q.tasks[ids[0]], true
}
