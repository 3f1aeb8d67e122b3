package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"8f14e45f-ceea-467f-a0e6-0e6d8a5d8a5d", "8f14e45f"},
		{"short", "short"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Contains(t, TruncID(tt.id), tt.want)
		assert.NotContains(t, TruncID(tt.id), "-ceea")
	}
}

func TestTagList(t *testing.T) {
	assert.Contains(t, TagList(nil), "--")
	out := TagList([]string{"grief", "release"})
	assert.Contains(t, out, "grief, release")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Journal Prompts", "body text")
	assert.Contains(t, out, "JOURNAL PROMPTS")
	assert.Contains(t, out, "body text")
	assert.Contains(t, out, "╭")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	out := RenderBox("", "only body")
	assert.Contains(t, out, "only body")
	assert.Equal(t, 1, strings.Count(out, "only body"))
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "fetching prompts")
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "fetching prompts")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}
