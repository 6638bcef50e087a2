package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrFunctionMissing = errors.New(f("script function missing"))
	ErrNotCallable     = errors.New(f("script global is not callable"))
)

// ErrScriptValue is a value returned by a script hook that is not an
// integer machine word.
type ErrScriptValue string

func (err ErrScriptValue) Error() string {
	return f("script returned %v, want int or None", string(err))
}
