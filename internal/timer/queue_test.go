package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceRunsInDueOrder(t *testing.T) {
	q := NewQueue()
	var order []string

	q.Schedule(3*time.Second, func() { order = append(order, "slow") })
	q.Schedule(150*time.Millisecond, func() { order = append(order, "fade") })
	q.Schedule(150*time.Millisecond, func() { order = append(order, "fade2") })

	q.Advance(100 * time.Millisecond)
	assert.Empty(t, order)

	q.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"fade", "fade2"}, order)

	q.Advance(5 * time.Second)
	assert.Equal(t, []string{"fade", "fade2", "slow"}, order)
	assert.Zero(t, q.Pending())
}

func TestCancel(t *testing.T) {
	q := NewQueue()
	ran := false

	cancel := q.Schedule(time.Second, func() { ran = true })
	assert.Equal(t, 1, q.Pending())

	cancel()
	cancel()
	q.Advance(time.Minute)

	assert.False(t, ran)
	assert.Zero(t, q.Pending())
}

func TestTaskScheduledDuringAdvance(t *testing.T) {
	q := NewQueue()
	var hits []int

	q.Schedule(time.Second, func() {
		hits = append(hits, 1)
		q.Schedule(time.Second, func() { hits = append(hits, 2) })
	})

	q.Advance(1500 * time.Millisecond)
	assert.Equal(t, []int{1}, hits)

	q.Advance(500 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, hits)
}

func TestFlushAndFire(t *testing.T) {
	q := NewQueue()
	ran := 0

	q.Schedule(10*time.Millisecond, func() { ran++ })
	cancel := q.Schedule(20*time.Millisecond, func() { ran += 10 })

	tickets := q.Flush()
	require.Len(t, tickets, 2)
	assert.Equal(t, 10*time.Millisecond, tickets[0].Delay)
	assert.Empty(t, q.Flush())

	cancel()
	assert.True(t, q.Fire(tickets[0].ID))
	assert.False(t, q.Fire(tickets[0].ID))
	assert.False(t, q.Fire(tickets[1].ID))
	assert.Equal(t, 1, ran)
}

func TestNegativeDelayRunsImmediatelyOnAdvance(t *testing.T) {
	q := NewQueue()
	ran := false
	q.Schedule(-time.Second, func() { ran = true })

	q.Advance(0)
	assert.True(t, ran)
}
