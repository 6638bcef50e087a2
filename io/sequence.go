package io

import (
	"iter"
	"slices"
)

// Sequence is an input-only channel pulling values from an iterator.
type Sequence struct {
	next func() (int64, bool)
	stop func()
}

var _ Channel = (*Sequence)(nil)

// NewSequence wraps seq as a channel. Close releases the iterator if it is
// not read to the end.
func NewSequence(seq iter.Seq[int64]) *Sequence {
	next, stop := iter.Pull(seq)
	return &Sequence{next: next, stop: stop}
}

// Values is a Sequence over a fixed list of values.
func Values(values ...int64) *Sequence {
	return NewSequence(slices.Values(values))
}

// Receive returns the next value of the iterator.
func (seq *Sequence) Receive() (value int64, err error) {
	value, ok := seq.next()
	if !ok {
		err = ErrChannelEmpty
	}

	return
}

// Send is not possible on a sequence.
func (seq *Sequence) Send(value int64) error {
	return ErrChannelFull
}

// Close stops the underlying iterator.
func (seq *Sequence) Close() error {
	seq.stop()
	return nil
}
