package recovery

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	ErrTest = errors.New("test error")
)

func TestRunNoPanic(t *testing.T) {
	req := require.New(t)

	called := 0
	err := Run(func() { called++ })
	req.NoError(err)
	req.Equal(1, called)
}

func TestRunErrorPanicIsUnchanged(t *testing.T) {
	req := require.New(t)

	err := Run(func() { panic(ErrTest) })
	req.Equal(ErrTest, err)
}

func TestRunValuePanic(t *testing.T) {
	req := require.New(t)

	err := Run(func() { panic("boom") })

	var perr *PanicError
	req.ErrorAs(err, &perr)
	req.Equal("boom", perr.Value)
	req.NotEmpty(perr.Stack)
	req.Equal("panic: boom", err.Error())
}

func TestRunRuntimeError(t *testing.T) {
	req := require.New(t)

	err := Run(func() {
		var m map[string]int
		m["x"] = 1
	})

	var rerr runtime.Error
	req.ErrorAs(err, &rerr)
}

func TestRunNilPanic(t *testing.T) {
	req := require.New(t)

	err := Run(func() { panic(nil) })

	var nerr *runtime.PanicNilError
	req.ErrorAs(err, &nerr)
}

func TestCall(t *testing.T) {
	req := require.New(t)

	v, err := Call(func() (int, error) { return 42, nil })
	req.NoError(err)
	req.Equal(42, v)

	v, err = Call(func() (int, error) { return 7, ErrTest })
	req.ErrorIs(err, ErrTest)
	req.Equal(0, v)

	v, err = Call(func() (int, error) { panic(ErrTest) })
	req.ErrorIs(err, ErrTest)
	req.Equal(0, v)
}

func TestPanicErrorLogValue(t *testing.T) {
	req := require.New(t)

	err := Run(func() { panic(42) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Error("captured panic", "panic", err)

	req.Contains(buf.String(), "panic.value=42")
	req.Contains(buf.String(), "panic.stack=")
}
