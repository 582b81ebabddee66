package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_FullAndPartialPages(t *testing.T) {
	src := intRange(65)

	p0 := Paginate(src, 0)
	assert.Len(t, p0.Items, 30)
	assert.Equal(t, 0, p0.Items[0])
	assert.Equal(t, 29, p0.Items[29])
	assert.Equal(t, int64(65), p0.TotalElements)
	assert.Equal(t, 30, p0.PageSize)

	p1 := Paginate(src, 1)
	assert.Len(t, p1.Items, 30)
	assert.Equal(t, 30, p1.Items[0])

	p2 := Paginate(src, 2)
	assert.Len(t, p2.Items, 5)
	assert.Equal(t, 60, p2.Items[0])
	assert.Equal(t, 64, p2.Items[4])
}

// Consecutive pages tile the source: no overlap, nothing skipped.
func TestPaginate_PagesReconstructSource(t *testing.T) {
	src := intRange(95)

	var rebuilt []int
	for page := 0; ; page++ {
		p := Paginate(src, page)
		if len(p.Items) == 0 {
			break
		}
		rebuilt = append(rebuilt, p.Items...)
	}

	assert.Equal(t, src, rebuilt)
}

func TestPaginate_OutOfRange(t *testing.T) {
	src := intRange(10)

	p := Paginate(src, 5)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(10), p.TotalElements)
	assert.Equal(t, 5, p.Page)
}

func TestPaginate_EmptySource(t *testing.T) {
	p := Paginate([]int{}, 0)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(0), p.TotalElements)
}

func TestPaginate_NegativePageClampsToZero(t *testing.T) {
	src := intRange(5)

	p := Paginate(src, -3)
	assert.Equal(t, 0, p.Page)
	assert.Len(t, p.Items, 5)
}

func TestPaginate_CopiesWindow(t *testing.T) {
	src := intRange(3)
	p := Paginate(src, 0)

	src[0] = 999
	assert.Equal(t, 0, p.Items[0])
}

func TestNew_NilItemsBecomeEmpty(t *testing.T) {
	p := New[int](nil, 0, 0)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestOrderClause(t *testing.T) {
	cases := map[string]string{
		"desc":   "price DESC, average_stars DESC",
		"asc":    "price ASC, average_stars DESC",
		"review": "average_stars DESC",
		"recent": "created_at DESC, average_stars DESC",
	}
	for key, want := range cases {
		got, err := OrderClause(key)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, key := range []string{"", "price", "DESC", "stars"} {
		_, err := OrderClause(key)
		assert.ErrorIs(t, err, ErrInvalidSortCriteria)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0))
	assert.Equal(t, 30, Offset(1))
	assert.Equal(t, 90, Offset(3))
	assert.Equal(t, 0, Offset(-1))
}
