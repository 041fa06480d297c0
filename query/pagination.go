package query

import (
	"strconv"

	"github.com/rpupo63/news-board-backend/errs"
)

// DefaultLimit is the page size used when limit is not supplied.
const DefaultLimit = 10

// Page is a validated limit/p pair. Number is 0 when p was not supplied,
// in which case no offset is applied.
type Page struct {
	Limit  int
	Number int
}

// ParsePage validates the raw limit and p query values.
func ParsePage(limit, page string) (Page, error) {
	p := Page{Limit: DefaultLimit}

	if limit != "" {
		n, err := parsePositive(limit)
		if err != nil {
			return Page{}, errs.NewInvalidPaginationError("limit", err.Error())
		}
		p.Limit = n
	}

	if page != "" {
		n, err := parsePositive(page)
		if err != nil {
			return Page{}, errs.NewInvalidPaginationError("p", err.Error())
		}
		p.Number = n
	}

	return p, nil
}

// Offset is limit * (p - 1), or 0 when p was not supplied.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return p.Limit * (p.Number - 1)
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
