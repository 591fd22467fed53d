package response

import "github.com/jinzhu/copier"

// mustCopy fills dst from src by field name. Mismatched shapes are a
// programming error, so a failure panics and is turned into a 500 by the
// recovery middleware.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic("response mapping: " + err.Error())
	}
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

type PaginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}
