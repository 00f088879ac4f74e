package services

import (
	"testing"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/testkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePageNumber(t *testing.T) {
	cases := []struct {
		requested string
		count     int64
		number    int
		pages     int
	}{
		{"", 13, 1, 2},
		{"2", 13, 2, 2},
		{"abc", 13, 1, 2},
		{"0", 13, 1, 2},
		{"-3", 13, 1, 2},
		{"99", 13, 2, 2},
		{"", 0, 1, 1},
		{"5", 0, 1, 1},
		{"1", 10, 1, 1},
		{"2", 11, 2, 2},
	}

	for _, tc := range cases {
		number, pages := ResolvePageNumber(tc.requested, tc.count, 10)
		assert.Equal(t, tc.number, number, "page %q of %d", tc.requested, tc.count)
		assert.Equal(t, tc.pages, pages, "pages of %d", tc.count)
	}
}

func TestPaginateSplitsThirteenIntoTenAndThree(t *testing.T) {
	testkit.Setup(t)
	author := testkit.NewUser(t, "leo")
	testkit.NewPosts(t, author, nil, 13)

	first, err := PaginatePost(database.C, "")
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.EqualValues(t, 13, first.Count)
	assert.Equal(t, 2, first.NumPages)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())

	second, err := PaginatePost(database.C, "2")
	require.NoError(t, err)
	assert.Len(t, second.Items, 3)
	assert.False(t, second.HasNext())
	assert.Equal(t, 1, second.PreviousNumber())

	seen := map[uint]bool{}
	for _, item := range append(first.Items, second.Items...) {
		assert.False(t, seen[item.ID], "post %d listed twice", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, seen, 13)
}

func TestPaginateEmptyCollection(t *testing.T) {
	testkit.Setup(t)

	page, err := PaginatePost(database.C, "3")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.False(t, page.HasOtherPages())
}

func TestPaginateRespectsConfiguredSize(t *testing.T) {
	cases := []struct {
		count int64
		items int
	}{{0, 0}, {4, 4}, {9, 3}}

	for _, tc := range cases {
		page, err := Paginate(tc.count, "last", 3, func(take, offset int) ([]int, error) {
			out := make([]int, 0, take)
			for i := offset; i < offset+take && int64(i) < tc.count; i++ {
				out = append(out, i)
			}
			return out, nil
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Items), 3)
		if tc.count > 0 {
			assert.Equal(t, 1, page.Number)
			assert.Len(t, page.Items, min(3, int(tc.count)))
		}
	}
}
