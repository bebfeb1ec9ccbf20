package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/cmd/stamp/commands"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/build"
)

type mockApp struct {
	calls []string
	opts  app.TargetOptions
	clean app.CleanOptions
	err   error
}

func (m *mockApp) Generate(_ context.Context, opts app.TargetOptions) error {
	m.calls = append(m.calls, "generate")
	m.opts = opts
	return m.err
}

func (m *mockApp) Verify(_ context.Context, opts app.TargetOptions) error {
	m.calls = append(m.calls, "verify")
	m.opts = opts
	return m.err
}

func (m *mockApp) Show(_ context.Context, w io.Writer, opts app.TargetOptions) error {
	m.calls = append(m.calls, "show")
	m.opts = opts
	_, _ = io.WriteString(w, "! 'demo' '1.2.3' 'x'\n")
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.TargetOptions) error {
	m.calls = append(m.calls, "watch")
	m.opts = opts
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.calls = append(m.calls, "clean")
	m.clean = opts
	return m.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(t.Context())
	return buf.String(), err
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "generate", "--manifest", "build/stamp.yaml", "--target", "server", "--force")
		require.NoError(t, err)

		assert.Equal(t, []string{"generate"}, mock.calls)
		assert.Equal(t, app.TargetOptions{Manifest: "build/stamp.yaml", Target: "server", Force: true}, mock.opts)
	})

	t.Run("all", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "generate", "-a")
		require.NoError(t, err)
		assert.True(t, mock.opts.All)
	})

	t.Run("target and all are exclusive", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "generate", "--all", "--target", "server")
		require.Error(t, err)
		assert.Empty(t, mock.calls)
	})

	t.Run("returns app error", func(t *testing.T) {
		mock := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, mock, "generate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "generate", "server")
		require.Error(t, err)
	})
}

func TestCommands_VerifyShowWatch(t *testing.T) {
	for _, name := range []string{"verify", "show", "watch"} {
		t.Run(name, func(t *testing.T) {
			mock := &mockApp{}
			_, err := execute(t, mock, name, "-t", "cli")
			require.NoError(t, err)
			assert.Equal(t, []string{name}, mock.calls)
			assert.Equal(t, "cli", mock.opts.Target)
		})
	}
}

func TestCommands_ShowWritesStdout(t *testing.T) {
	mock := &mockApp{}
	out, err := execute(t, mock, "show")
	require.NoError(t, err)
	assert.Equal(t, "! 'demo' '1.2.3' 'x'\n", out)
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "clean", "--outputs", "--all")
	require.NoError(t, err)

	assert.True(t, mock.clean.Outputs)
	assert.True(t, mock.clean.All)
}

func TestCommands_GlobalFlags(t *testing.T) {
	var jsonEnabled bool
	var verboseTo io.Writer

	cli := commands.New(&mockApp{},
		commands.WithLogJSON(func(enable bool) { jsonEnabled = enable }),
		commands.WithVerbose(func(w io.Writer) { verboseTo = w }),
	)
	stderr := new(bytes.Buffer)
	cli.SetOutput(new(bytes.Buffer), stderr)
	cli.SetArgs([]string{"generate", "--log-json", "-v"})

	require.NoError(t, cli.Execute(t.Context()))
	assert.True(t, jsonEnabled)
	assert.Same(t, stderr, verboseTo)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stamp version "+build.Version)
}
