package query

import (
	"strings"

	"github.com/rpupo63/news-board-backend/errs"
)

// SortColumn is one of the article columns a list may be ordered by.
// Its fields are unexported so values only come from this package; the
// zero value sorts by created_at.
type SortColumn struct {
	name string
	expr string
}

var (
	SortByArticleID     = SortColumn{"article_id", "articles.article_id"}
	SortByTitle         = SortColumn{"title", "articles.title"}
	SortByTopic         = SortColumn{"topic", "articles.topic"}
	SortByAuthor        = SortColumn{"author", "articles.author"}
	SortByCreatedAt     = SortColumn{"created_at", "articles.created_at"}
	SortByCommentCount  = SortColumn{"comment_count", "comment_count"}
	SortByVotes         = SortColumn{"votes", "articles.votes"}
	SortByArticleImgURL = SortColumn{"article_img_url", "articles.article_img_url"}
)

var sortColumns = []SortColumn{
	SortByArticleID,
	SortByTitle,
	SortByTopic,
	SortByAuthor,
	SortByCreatedAt,
	SortByCommentCount,
	SortByVotes,
	SortByArticleImgURL,
}

// SortColumns returns the allow-list in declaration order.
func SortColumns() []SortColumn {
	out := make([]SortColumn, len(sortColumns))
	copy(out, sortColumns)
	return out
}

// ParseSortColumn maps a sort_by value onto the allow-list. An empty value
// selects created_at.
func ParseSortColumn(s string) (SortColumn, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	for _, c := range sortColumns {
		if c.name == s {
			return c, nil
		}
	}
	return SortColumn{}, errs.NewInvalidQueryError("sort_by", "unsupported sort column "+quote(s))
}

func (c SortColumn) String() string {
	if c.name == "" {
		return SortByCreatedAt.name
	}
	return c.name
}

func (c SortColumn) sqlExpr() string {
	if c.expr == "" {
		return SortByCreatedAt.expr
	}
	return c.expr
}

// Order is a sort direction. The zero value is descending.
type Order struct {
	asc bool
}

var (
	Desc = Order{}
	Asc  = Order{asc: true}
)

// ParseOrder accepts "asc" or "desc"; an empty value selects desc.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "":
		return Desc, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Order{}, errs.NewInvalidQueryError("order", "unsupported order "+quote(s))
}

func (o Order) String() string {
	if o.asc {
		return "asc"
	}
	return "desc"
}

func (o Order) keyword() string {
	return strings.ToUpper(o.String())
}

func quote(s string) string {
	return `"` + s + `"`
}
