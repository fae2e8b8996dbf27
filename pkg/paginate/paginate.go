package paginate

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a pagination argument is not a positive integer.
var ErrInvalidArgument = errors.New("invalid pagination argument")

// Windowable is the capability we require from a query builder: attaching an
// offset and a limit to an existing query, returning a derived query of the
// same type without touching predicates or ordering already present.
// *gorm.DB satisfies it out of the box.
type Windowable[Q any] interface {
	Offset(int) Q
	Limit(int) Q
}

// Window returns q with OFFSET (pageNumber-1)*pageSize and LIMIT pageSize
// applied. It never executes the query and never clamps its inputs: pages and
// sizes below 1 fail with ErrInvalidArgument so callers validate upstream
// instead of silently fetching the wrong window.
func Window[Q Windowable[Q]](q Q, pageNumber, pageSize int) (Q, error) {
	if err := requirePositive("page number", pageNumber); err != nil {
		var zero Q
		return zero, err
	}
	if err := requirePositive("page size", pageSize); err != nil {
		var zero Q
		return zero, err
	}

	offset := (pageNumber - 1) * pageSize
	return q.Offset(offset).Limit(pageSize), nil
}

// Metadata describes the navigation state of one page of results. NextPage and
// PreviousPage are nil when the corresponding page does not exist, so template
// logic can key "Next"/"Previous" links off plain presence checks.
type Metadata struct {
	CurrentPage  int  `json:"current_page"`
	NextPage     *int `json:"next_page,omitempty"`
	PreviousPage *int `json:"previous_page,omitempty"`
	NumPages     int  `json:"num_pages"`
}

// BuildMetadata derives pagination metadata from the requested page, the page
// size, and the total row count the caller obtained from its data store.
//
// NumPages is totalItems/pageSize with truncating division: a trailing partial
// page is not counted. A pageNumber beyond the last page is NOT an error — the
// result simply carries no NextPage, which is what link-rendering code relies
// on. All three inputs must be >= 1, including totalItems; callers listing
// possibly-empty collections handle the zero-row case themselves.
func BuildMetadata(pageNumber, pageSize, totalItems int) (Metadata, error) {
	if err := requirePositive("page number", pageNumber); err != nil {
		return Metadata{}, err
	}
	if err := requirePositive("page size", pageSize); err != nil {
		return Metadata{}, err
	}
	if err := requirePositive("total items", totalItems); err != nil {
		return Metadata{}, err
	}

	numPages := totalItems / pageSize

	meta := Metadata{
		CurrentPage: pageNumber,
		NumPages:    numPages,
	}
	if next := pageNumber + 1; next <= numPages {
		meta.NextPage = &next
	}
	if prev := pageNumber - 1; prev >= 1 {
		meta.PreviousPage = &prev
	}
	return meta, nil
}

func requirePositive(name string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidArgument, name, v)
	}
	return nil
}
