// Provide error wrapper which remembers where it is created.
//
// Usage:
//
// ```
// wrapped := xe.Wrap(err)
// ```
//
// `wrapped` knows the function, filename and line where xe.Wrap is called.
//
// Messages of nested wrappers are joined with " <- ", so reading a message from
// left to right walks from the outermost call site down to the root cause.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// Frame is a call site recorded by a wrapper.
type Frame struct {
	Func string
	File string
	Line int
}

func (f Frame) String() string {
	return fmt.Sprintf(`@ %s "%s" l%d`, f.Func, f.File, f.Line)
}

// error with the location where it has been wrapped.
type ErrWithCaller struct {
	frame Frame
	note  string
	err   error
}

func (e *ErrWithCaller) Frame() Frame {
	return e.frame
}

func (e *ErrWithCaller) Note() string {
	return e.note
}

func (e *ErrWithCaller) Error() string {
	if e.note == "" {
		return fmt.Sprintf(`%s <- %s`, e.frame, e.err)
	}
	return fmt.Sprintf(`%s (%s) <- %s`, e.frame, e.note, e.err)
}

func (e *ErrWithCaller) Unwrap() error {
	return e.err
}

// New creates a new error annotated with the caller.
func New(text string) error {
	return wrap("", errors.New(text), 1)
}

// Errorf is fmt.Errorf annotated with the caller. %w works as usual.
func Errorf(format string, args ...any) error {
	return wrap("", fmt.Errorf(format, args...), 1)
}

// Wrap annotates err with the caller.
//
// When err is nil, Wrap returns nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return wrap("", err, 1)
}

// WrapWithNote annotates err with the caller and a short note.
//
// When err is nil, WrapWithNote returns nil.
func WrapWithNote(note string, err error) error {
	if err == nil {
		return nil
	}
	return wrap(note, err, 1)
}

func wrap(note string, err error, depth int) error {
	frame := Frame{Func: "(unknown func)", File: "?", Line: -1}
	if pc, file, line, ok := runtime.Caller(depth + 1); ok {
		frame.File = file
		frame.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			frame.Func = fn.Name()
		}
	}

	return &ErrWithCaller{frame: frame, note: note, err: err}
}
