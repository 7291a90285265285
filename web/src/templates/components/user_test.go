package components

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBadge_EscapesName(t *testing.T) {
	var b strings.Builder
	require.NoError(t, UserBadge("shell-user", `<script>alice</script>`).Render(context.Background(), &b))

	out := b.String()
	assert.Contains(t, out, `id="shell-user"`)
	assert.Contains(t, out, "&lt;script&gt;alice&lt;/script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestEmptyUser(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EmptyUser("shell-user").Render(context.Background(), &b))
	assert.Equal(t, `<span id="shell-user"></span>`, b.String())
}
