package response

import "catalog/pkg/paginate"

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Page is the payload shape for paginated list endpoints: the window of items
// plus the navigation metadata and the unpaginated total.
type Page struct {
	Items    interface{}       `json:"items"`
	Metadata paginate.Metadata `json:"metadata"`
	Total    int64             `json:"total"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Paged returns a success response wrapping one page of a listing
func Paged(statusCode int, items interface{}, meta paginate.Metadata, total int64) Response {
	return Success(statusCode, Page{Items: items, Metadata: meta, Total: total})
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
