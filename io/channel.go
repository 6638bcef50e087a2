// Package io provides value channels that connect intcode machines to
// their drivers. Channels carry one machine word at a time: a FIFO Queue
// for chaining machines, a Sequence adapting Go iterators, and a Tape over
// text streams.
package io

// Channel defines the interface for all value channels.
type Channel interface {
	// Receive returns the next value from the channel, or ErrChannelEmpty
	// when no value is available.
	Receive() (value int64, err error)
	// Send writes a single value to the channel.
	Send(value int64) error
}
