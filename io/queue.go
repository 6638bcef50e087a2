package io

// Queue is a first-in, first-out channel. A zero Capacity is unbounded.
type Queue struct {
	Capacity int
	Data     []int64
}

var _ Channel = (*Queue)(nil)

// NewQueue creates an unbounded queue holding the given values.
func NewQueue(values ...int64) *Queue {
	return &Queue{Data: values}
}

// Len returns the number of values waiting in the queue.
func (q *Queue) Len() int {
	return len(q.Data)
}

// Receive removes and returns the oldest value.
func (q *Queue) Receive() (value int64, err error) {
	if len(q.Data) == 0 {
		err = ErrChannelEmpty
		return
	}

	value = q.Data[0]
	q.Data = q.Data[1:]

	return
}

// Send appends a value, or returns ErrChannelFull if the queue is at
// capacity.
func (q *Queue) Send(value int64) (err error) {
	if q.Capacity > 0 && len(q.Data) >= q.Capacity {
		err = ErrChannelFull
		return
	}

	q.Data = append(q.Data, value)

	return
}

// Drain removes and returns all waiting values.
func (q *Queue) Drain() (values []int64) {
	values = q.Data
	q.Data = nil

	return
}
