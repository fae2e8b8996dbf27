package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuery records the window applied to it so tests can observe composition
// without a real query builder.
type fakeQuery struct {
	wheres []string
	offset int
	limit  int
}

func (q fakeQuery) Offset(n int) fakeQuery {
	q.offset = n
	return q
}

func (q fakeQuery) Limit(n int) fakeQuery {
	q.limit = n
	return q
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset int
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "second page", page: 2, size: 20, wantOffset: 20, wantLimit: 20},
		{name: "size one", page: 7, size: 1, wantOffset: 6, wantLimit: 1},
		{name: "large window", page: 13, size: 250, wantOffset: 3000, wantLimit: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := fakeQuery{wheres: []string{"deleted_at IS NULL"}}
			got, err := Window(base, tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, got.offset)
			assert.Equal(t, tt.wantLimit, got.limit)
			// prior query state must survive untouched
			assert.Equal(t, base.wheres, got.wheres)
		})
	}
}

func TestWindowRejectsNonPositiveArguments(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
	}{
		{name: "zero page", page: 0, size: 10},
		{name: "negative page", page: -3, size: 10},
		{name: "zero size", page: 1, size: 0},
		{name: "negative size", page: 1, size: -1},
		{name: "both invalid", page: 0, size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Window(fakeQuery{}, tt.page, tt.size)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestWindowIsPure(t *testing.T) {
	base := fakeQuery{wheres: []string{"sku = ?"}}
	first, err := Window(base, 3, 25)
	require.NoError(t, err)
	second, err := Window(base, 3, 25)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// the input query value is untouched
	assert.Zero(t, base.offset)
	assert.Zero(t, base.limit)
}

func TestBuildMetadata(t *testing.T) {
	intp := func(n int) *int { return &n }

	tests := []struct {
		name  string
		page  int
		size  int
		total int
		want  Metadata
	}{
		{
			name: "first of two pages", page: 1, size: 20, total: 45,
			want: Metadata{CurrentPage: 1, NextPage: intp(2), NumPages: 2},
		},
		{
			name: "last page", page: 2, size: 20, total: 45,
			want: Metadata{CurrentPage: 2, PreviousPage: intp(1), NumPages: 2},
		},
		{
			name: "middle page", page: 2, size: 10, total: 35,
			want: Metadata{CurrentPage: 2, NextPage: intp(3), PreviousPage: intp(1), NumPages: 3},
		},
		{
			name: "beyond last page", page: 3, size: 20, total: 45,
			want: Metadata{CurrentPage: 3, PreviousPage: intp(2), NumPages: 2},
		},
		{
			name: "single full page", page: 1, size: 10, total: 10,
			want: Metadata{CurrentPage: 1, NumPages: 1},
		},
		{
			name: "fewer items than one page", page: 1, size: 50, total: 7,
			want: Metadata{CurrentPage: 1, NumPages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildMetadata(tt.page, tt.size, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMetadataRejectsNonPositiveArguments(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		size  int
		total int
	}{
		{name: "zero page", page: 0, size: 20, total: 45},
		{name: "negative page", page: -1, size: 20, total: 45},
		{name: "zero size", page: 1, size: 0, total: 45},
		{name: "zero total", page: 1, size: 20, total: 0},
		{name: "negative total", page: 1, size: 20, total: -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildMetadata(tt.page, tt.size, tt.total)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestBuildMetadataIsIdempotent(t *testing.T) {
	first, err := BuildMetadata(2, 20, 45)
	require.NoError(t, err)
	second, err := BuildMetadata(2, 20, 45)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMetadataFloorDivision(t *testing.T) {
	// a trailing partial page is not counted as an extra page
	meta, err := BuildMetadata(1, 20, 45)
	require.NoError(t, err)
	assert.Equal(t, 2, meta.NumPages)

	meta, err = BuildMetadata(1, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, 2, meta.NumPages)

	meta, err = BuildMetadata(1, 20, 39)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.NumPages)
}
