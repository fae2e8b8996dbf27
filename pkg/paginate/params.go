package paginate

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds pagination parameters already validated at the HTTP edge.
// Window and BuildMetadata stay strict; this is the upstream layer that turns
// whatever the client sent into something safe to pass down.
type Params struct {
	Page  int
	Limit int
}

// Parse extracts page/limit from query parameters, falling back to defaults
// and clamping the limit. A page beyond the last one is deliberately left
// alone: the metadata for it simply carries no next link.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
