package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull  = errors.New(f("channel full"))
	ErrChannelEmpty = errors.New(f("channel empty"))
)

// ErrTapeValue is an unparsable input token on a Tape.
type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("'%v' is not a number", string(err))
}
