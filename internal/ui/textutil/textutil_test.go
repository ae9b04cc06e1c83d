package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 2, Width("md"))
	assert.Equal(t, 4, Width("幅広"), "wide runes take two columns")
}

func TestMaxWidth(t *testing.T) {
	labels := []string{"xs", "standard", "幅広"}
	assert.Equal(t, 8, MaxWidth(labels, 0))
	assert.Equal(t, 5, MaxWidth(labels, 5))
	assert.Equal(t, 0, MaxWidth(nil, 5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "md", Truncate("md", 4))
	assert.Equal(t, "stan…", Truncate("standard", 5))
	assert.Equal(t, "", Truncate("standard", 0))
	assert.LessOrEqual(t, Width(Truncate("幅広い画面", 5)), 5)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "md   ", Fit("md", 5))
	assert.Equal(t, "stan…", Fit("standard", 5))
	assert.Equal(t, 6, Width(Fit("幅広", 6)))
}
