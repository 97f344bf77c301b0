package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGroupsPartitionDummy(t *testing.T) {
	table, err := NewTable(DefaultPartCount, DefaultGroups())
	require.NoError(t, err)
	assert.Equal(t, DefaultPartCount, table.PartCount())

	names := map[int]string{
		0: "left-leg", 5: "left-leg",
		6: "left-arm", 11: "left-arm",
		12: "right-arm", 27: "right-arm", 28: "right-arm",
		14: "right-leg", 26: "right-leg",
		13: "rest", 17: "rest", 21: "rest", 23: "rest", 24: "rest",
	}
	for part, want := range names {
		g, err := table.Lookup(part)
		require.NoError(t, err)
		assert.Equal(t, want, g.Name, "part %d", part)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	table, err := NewTable(DefaultPartCount, DefaultGroups())
	require.NoError(t, err)

	_, err = table.Lookup(29)
	assert.ErrorIs(t, err, ErrInvalidGroupIndex)
	_, err = table.Lookup(-1)
	assert.ErrorIs(t, err, ErrInvalidGroupIndex)
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		groups []Group
		want   error
	}{
		{
			name:   "index out of range",
			count:  2,
			groups: []Group{{Name: "a", Parts: []int{0, 1, 2}}},
			want:   ErrInvalidGroupIndex,
		},
		{
			name:   "overlap",
			count:  3,
			groups: []Group{{Name: "a", Parts: []int{0, 1}}, {Name: "b", Parts: []int{1, 2}}},
			want:   ErrOverlappingGroups,
		},
		{
			name:   "uncovered",
			count:  4,
			groups: []Group{{Name: "a", Parts: []int{0, 1}}, {Name: "b", Parts: []int{3}}},
			want:   ErrUncoveredPart,
		},
		{
			name:   "default layout on a smaller mesh",
			count:  20,
			groups: DefaultGroups(),
			want:   ErrInvalidGroupIndex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.count, tt.groups)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTableCopiesGroups(t *testing.T) {
	groups := []Group{{Name: "all", Parts: []int{0, 1}}}
	table, err := NewTable(2, groups)
	require.NoError(t, err)

	groups[0].Parts[0] = 1
	g, err := table.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, g.Parts)
}
