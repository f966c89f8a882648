package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one source", func(t *testing.T) {
		t.Parallel()

		_, err := NewConfig(Config{})
		require.Error(t, err)
	})

	t.Run("valid config passes through", func(t *testing.T) {
		t.Parallel()

		cfg, err := NewConfig(Config{Sources: []string{"a=1"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"a=1"}, cfg.Sources)
	})
}

func TestAppRun(t *testing.T) {
	t.Parallel()

	t.Run("writes the normalized result with a trailing newline", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		logOut := &bytes.Buffer{}
		cfg, err := NewConfig(Config{
			Sources:   []string{"a=1"},
			ForceJSON: true,
			LogLevel:  "debug",
			LogFormat: "text",
		})
		require.NoError(t, err)

		a := NewApp(out, logOut, cfg)
		require.NoError(t, a.Run(context.Background()))

		assert.JSONEq(t, `{"a": 1}`, out.String())
		assert.NotContains(t, out.String(), "level=", "log lines must not leak into the result stream")
		assert.Contains(t, logOut.String(), "App.Run method finished.")
	})

	t.Run("empty result writes nothing", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		logOut := &bytes.Buffer{}
		cfg, err := NewConfig(Config{Sources: []string{""}, ForceJSON: true})
		require.NoError(t, err)

		a := NewApp(out, logOut, cfg)
		require.NoError(t, a.Run(context.Background()))
		assert.Empty(t, out.String())
	})

	t.Run("parse failures surface with the offending source", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		logOut := &bytes.Buffer{}
		cfg, err := NewConfig(Config{Sources: []string{"not: valid: yaml:"}, ForceJSON: true})
		require.NoError(t, err)

		a := NewApp(out, logOut, cfg)
		err = a.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not: valid: yaml:")
		assert.Empty(t, out.String())
	})
}
