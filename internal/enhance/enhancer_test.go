package enhance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	n := Noop{}

	answers := map[string]string{"problem": "Slow"}

	got, err := n.EnhanceContent(ctx, answers)
	require.NoError(t, err)
	assert.Equal(t, answers, got)

	headers, err := n.SuggestHeaders(ctx, answers)
	require.NoError(t, err)
	assert.Empty(t, headers)

	script, err := n.GenerateScript(ctx, answers)
	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "Not specified", orDefault(""))
	assert.Equal(t, "Not specified", orDefault("   "))
	assert.Equal(t, "Acme", orDefault("Acme"))
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-1.5-flash")
	assert.Error(t, err)
}
