package query

// ParentKey identifies a row whose existence decides how an empty child
// listing is reported.
type ParentKey struct {
	table  string
	column string
	value  any
	entity string
}

func TopicKey(slug string) ParentKey {
	return ParentKey{table: "topics", column: "slug", value: slug, entity: "topic"}
}

func ArticleKey(id int) ParentKey {
	return ParentKey{table: "articles", column: "article_id", value: id, entity: "article"}
}

// Entity names the parent in error details.
func (k ParentKey) Entity() string {
	return k.entity
}

func (k ParentKey) Value() any {
	return k.value
}

func (k ParentKey) ExistsQuery() Query {
	return Query{
		SQL:  "SELECT EXISTS(SELECT 1 FROM " + k.table + " WHERE " + k.column + " = ?)",
		Args: []any{k.value},
	}
}
