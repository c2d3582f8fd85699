package material

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryCoversAllTags(t *testing.T) {
	tags := []string{Floor, Obsidian, Metal, Ritual, Fire, Crystal, Altar, Spike, Bone, Soul, Rune, Lava}
	require.Len(t, Library, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		m, ok := Library[tag]
		require.True(t, ok, "missing material %q", tag)
		require.NotEmpty(t, m.Name)
		require.False(t, seen[m.Name], "duplicate material name %q", m.Name)
		seen[m.Name] = true
	}
}

func TestEmissive(t *testing.T) {
	require.True(t, Library[Fire].Emissive())
	require.True(t, Library[Ritual].Emissive())
	require.False(t, Library[Floor].Emissive())
	require.False(t, Library[Bone].Emissive())
}
