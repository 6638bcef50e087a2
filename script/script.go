// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives intcode machines from Starlark scripts.
//
// A script defines on_input(), returning the next input value as an int
// or None when it has nothing more to say, and optionally
// on_output(value), called with each value the machine outputs. Scripts
// keep their memory in the predeclared dict 'state', and may report
// progress with log(msg).
package script

import (
	"errors"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/io"
)

const (
	ON_INPUT  = "on_input"  // Input hook name.
	ON_OUTPUT = "on_output" // Output hook name.
)

// Script is a Starlark program acting as an intcode I/O channel.
type Script struct {
	Verbose bool                // If set, logs every value exchanged.
	State   *starlark.Dict      // Script visible 'state' dict.
	Globals starlark.StringDict // Frozen script globals.

	filename string
	thread   *starlark.Thread
	onInput  starlark.Callable
	onOutput starlark.Callable
}

var _ io.Channel = (*Script)(nil)

// builtinLog implements log(msg, ...).
func builtinLog(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, errors.New(f("%v: unexpected keyword arguments", b.Name()))
	}

	words := make([]string, len(args))
	for n, arg := range args {
		if str, ok := arg.(starlark.String); ok {
			words[n] = string(str)
		} else {
			words[n] = arg.String()
		}
	}

	thread.Print(thread, strings.Join(words, " "))

	return starlark.None, nil
}

// hook returns the named global function, or nil if it is not defined.
func hook(globals starlark.StringDict, name string) (fn starlark.Callable, err error) {
	value, ok := globals[name]
	if !ok {
		return
	}

	fn, ok = value.(starlark.Callable)
	if !ok {
		err = errors.Join(ErrNotCallable, errors.New(name))
	}

	return
}

// Load executes the script source. src is as for starlark.ExecFile: nil to
// read filename, or a string, []byte or io.Reader holding the source.
func Load(filename string, src any) (script *Script, err error) {
	script = &Script{
		State:    starlark.NewDict(0),
		filename: filename,
	}

	script.thread = &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	pred := starlark.StringDict{
		"state": script.State,
		"log":   starlark.NewBuiltin("log", builtinLog),
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
	}

	script.Globals, err = starlark.ExecFileOptions(&opts, script.thread, filename, src, pred)
	if err != nil {
		script = nil
		return
	}

	script.onInput, err = hook(script.Globals, ON_INPUT)
	if err == nil && script.onInput == nil {
		err = errors.Join(ErrFunctionMissing, errors.New(ON_INPUT))
	}
	if err != nil {
		script = nil
		return
	}

	script.onOutput, err = hook(script.Globals, ON_OUTPUT)
	if err != nil {
		script = nil
		return
	}

	return
}

// Receive calls the script's on_input hook. A None result is reported as
// io.ErrChannelEmpty.
func (script *Script) Receive() (value int64, err error) {
	result, err := starlark.Call(script.thread, script.onInput, nil, nil)
	if err != nil {
		return
	}

	switch result := result.(type) {
	case starlark.NoneType:
		err = io.ErrChannelEmpty
		return
	case starlark.Int:
		var ok bool
		value, ok = result.Int64()
		if !ok {
			err = ErrScriptValue(result.String())
			return
		}
	default:
		err = ErrScriptValue(result.Type())
		return
	}

	if script.Verbose {
		log.Printf("%v: %v() = %v", script.filename, ON_INPUT, value)
	}

	return
}

// Send passes value to the script's on_output hook. Values are discarded
// if the script has no such hook.
func (script *Script) Send(value int64) (err error) {
	if script.Verbose {
		log.Printf("%v: %v(%v)", script.filename, ON_OUTPUT, value)
	}

	if script.onOutput == nil {
		return
	}

	_, err = starlark.Call(script.thread, script.onOutput, starlark.Tuple{starlark.MakeInt64(value)}, nil)

	return
}
