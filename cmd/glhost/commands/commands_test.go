package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glhost/cmd/glhost/commands"
	"go.trai.ch/glhost/internal/app"
	"go.trai.ch/glhost/internal/build"
)

type mockApp struct {
	runFunc      func(ctx context.Context, binary string, args []string, opts app.Options) error
	printEnvFunc func(ctx context.Context, w io.Writer, opts app.Options) error
	cleanFunc    func(ctx context.Context) error
}

func (m *mockApp) Run(ctx context.Context, binary string, args []string, opts app.Options) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, binary, args, opts)
	}
	return nil
}

func (m *mockApp) PrintEnv(ctx context.Context, w io.Writer, opts app.Options) error {
	if m.printEnvFunc != nil {
		return m.printEnvFunc(ctx, w, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires binary, args and flags", func(t *testing.T) {
		var gotBinary string
		var gotArgs []string
		var gotOpts app.Options
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, binary string, args []string, opts app.Options) error {
				gotBinary = binary
				gotArgs = args
				gotOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "-d", "/opt/nvidia/lib", "--", "glxgears", "-info"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "glxgears", gotBinary)
		assert.Equal(t, []string{"-info"}, gotArgs)
		assert.Equal(t, "/opt/nvidia/lib", gotOpts.DriverDir)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ []string, _ app.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "glxgears"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no binary provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ []string, _ app.Options) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_PrintEnv(t *testing.T) {
	mock := &mockApp{
		printEnvFunc: func(_ context.Context, w io.Writer, opts app.Options) error {
			assert.Equal(t, "/opt/nvidia/lib", opts.DriverDir)
			_, err := io.WriteString(w, "LD_LIBRARY_PATH=/cache/lib\n")
			return err
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"print-env", "-d", "/opt/nvidia/lib"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "LD_LIBRARY_PATH=/cache/lib")
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "glhost version "+build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"frobnicate"})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}
