package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputEmpty = errors.New(f("input empty"))
	ErrOutputFull = errors.New(f("output full"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int64
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %s %v", strconv.FormatInt(err.Ip, 10), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
