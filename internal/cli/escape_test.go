package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/primkit/pkg/numeric"
)

func TestEscapeCommand(t *testing.T) {
	t.Run("text golden", func(t *testing.T) {
		res := execute(t, "escape", `<div class="t">`)
		require.NoError(t, res.err)
		assertGolden(t, "escape_text", res.stdout)
	})

	t.Run("json golden", func(t *testing.T) {
		res := execute(t, "--format", "json", "escape", `<div class="t">`)
		require.NoError(t, res.err)
		assertGolden(t, "escape_json", res.stdout)
	})

	t.Run("arguments joined with spaces", func(t *testing.T) {
		res := execute(t, "escape", "a", "&", "b")
		require.NoError(t, res.err)
		assert.Equal(t, "a &amp; b\n", res.stdout)
	})

	t.Run("no double encoding", func(t *testing.T) {
		res := execute(t, "escape", `&<>"'`)
		require.NoError(t, res.err)
		assert.Equal(t, "&amp;&lt;&gt;&quot;&#039;\n", res.stdout)
	})
}

func TestEscapeCommandStdin(t *testing.T) {
	t.Run("trailing newline dropped", func(t *testing.T) {
		res := executeWith(t, numeric.DefaultConfig(), "Tom & 'Jerry'\n", "escape")
		require.NoError(t, res.err)
		assert.Equal(t, "Tom &amp; &#039;Jerry&#039;\n", res.stdout)
	})

	t.Run("inner newlines kept", func(t *testing.T) {
		res := executeWith(t, numeric.DefaultConfig(), "<a>\n<b>\n", "escape")
		require.NoError(t, res.err)
		assert.Equal(t, "&lt;a&gt;\n&lt;b&gt;\n", res.stdout)
	})

	t.Run("empty input", func(t *testing.T) {
		res := executeWith(t, numeric.DefaultConfig(), "", "escape")
		require.NoError(t, res.err)
		assert.Equal(t, "\n", res.stdout)
	})
}
