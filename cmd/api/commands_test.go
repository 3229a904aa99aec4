package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/book-purple/internal/auth"
)

func TestHashPasswordCommand(t *testing.T) {
	t.Run("from argument", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"hash-password", "--cost", "4", "s3cret"})

		require.NoError(t, cmd.Execute())
		hash := strings.TrimSpace(out.String())
		assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
	})

	t.Run("from stdin", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader("from-stdin\n"))
		cmd.SetArgs([]string{"hash-password", "--cost", "4"})

		require.NoError(t, cmd.Execute())
		assert.NoError(t, auth.ComparePassword(strings.TrimSpace(out.String()), "from-stdin"))
	})

	t.Run("empty stdin", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetIn(strings.NewReader(""))
		cmd.SetArgs([]string{"hash-password"})

		assert.Error(t, cmd.Execute())
	})
}
