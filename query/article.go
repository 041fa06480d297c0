package query

import (
	"strconv"
	"strings"

	"github.com/rpupo63/news-board-backend/errs"
)

// Query is parameterized SQL using gorm's ? placeholders.
type Query struct {
	SQL  string
	Args []any
}

// ArticleParams holds the raw list parameters. An empty string means the
// parameter was not supplied.
type ArticleParams struct {
	SortBy string
	Order  string
	Topic  string
	Limit  string
	Page   string
}

// ArticleQuery is a validated article listing.
type ArticleQuery struct {
	Sort  SortColumn
	Order Order
	Topic string
	Page  Page
}

const articleListSelect = `SELECT articles.article_id, articles.author, articles.title, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::int AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`

// BuildArticleQuery validates p in a fixed order and stops at the first
// failure: topic, sort_by, order, limit, p.
func BuildArticleQuery(p ArticleParams) (ArticleQuery, error) {
	if p.Topic != "" && isNumeric(p.Topic) {
		return ArticleQuery{}, errs.NewInvalidQueryError("topic", "topic must be a non-numeric slug")
	}

	sort, err := ParseSortColumn(p.SortBy)
	if err != nil {
		return ArticleQuery{}, err
	}

	order, err := ParseOrder(p.Order)
	if err != nil {
		return ArticleQuery{}, err
	}

	page, err := ParsePage(p.Limit, p.Page)
	if err != nil {
		return ArticleQuery{}, err
	}

	return ArticleQuery{Sort: sort, Order: order, Topic: p.Topic, Page: page}, nil
}

// List is the paginated listing with comment_count aggregated per article.
func (q ArticleQuery) List() Query {
	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString(articleListSelect)
	if q.Topic != "" {
		sb.WriteString("\nWHERE articles.topic = ?")
		args = append(args, q.Topic)
	}
	sb.WriteString("\nGROUP BY articles.article_id")

	dir := q.Order.keyword()
	sb.WriteString("\nORDER BY " + q.Sort.sqlExpr() + " " + dir)
	if q.Sort != SortByArticleID {
		sb.WriteString(", articles.article_id " + dir)
	}

	sb.WriteString("\nLIMIT ?")
	args = append(args, q.Page.Limit)
	if q.Page.Number > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, q.Page.Offset())
	}

	return Query{SQL: sb.String(), Args: args}
}

// Count is the number of articles matching the filter, ignoring pagination.
func (q ArticleQuery) Count() Query {
	if q.Topic == "" {
		return Query{SQL: "SELECT COUNT(*) FROM articles"}
	}
	return Query{SQL: "SELECT COUNT(*) FROM articles WHERE articles.topic = ?", Args: []any{q.Topic}}
}

// TopicFilter returns the parent key to check when a topic filter is set.
func (q ArticleQuery) TopicFilter() (ParentKey, bool) {
	if q.Topic == "" {
		return ParentKey{}, false
	}
	return TopicKey(q.Topic), true
}

// isNumeric reports decimal numbers such as "4", "-2" or "1.5e3". Words that
// ParseFloat also accepts, like "inf" or "nan", are treated as slugs.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || !(digits[0] == '.' || (digits[0] >= '0' && digits[0] <= '9')) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
