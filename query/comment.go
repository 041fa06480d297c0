package query

import "strings"

// CommentQuery is a validated listing of one article's comments, newest first.
type CommentQuery struct {
	ArticleID int
	Page      Page
}

// BuildCommentQuery applies the same limit/p rules as article listings.
func BuildCommentQuery(articleID int, limit, page string) (CommentQuery, error) {
	p, err := ParsePage(limit, page)
	if err != nil {
		return CommentQuery{}, err
	}
	return CommentQuery{ArticleID: articleID, Page: p}, nil
}

func (q CommentQuery) List() Query {
	var sb strings.Builder
	sb.WriteString(`SELECT comment_id, article_id, author, body, votes, created_at
FROM comments
WHERE article_id = ?
ORDER BY created_at DESC, comment_id DESC
LIMIT ?`)
	args := []any{q.ArticleID, q.Page.Limit}
	if q.Page.Number > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, q.Page.Offset())
	}
	return Query{SQL: sb.String(), Args: args}
}

func (q CommentQuery) Parent() ParentKey {
	return ArticleKey(q.ArticleID)
}
