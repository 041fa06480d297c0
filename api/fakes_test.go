package api

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"gorm.io/gorm"
)

// memStore is a small in-memory stand-in for the postgres repositories. It
// enforces the foreign keys and the cascade the schema declares; listings
// only honour the topic/article filter, ordering is covered by the
// integration suite.
type memStore struct {
	mu       sync.Mutex
	topics   []models.Topic
	users    []models.User
	articles map[int]*models.Article
	comments map[int]*models.Comment
	nextID   int
	pingErr  error
}

func newMemStore() *memStore {
	desc := func(s string) *string { return &s }
	m := &memStore{
		topics: []models.Topic{
			{Slug: "mitch", Description: desc("The man, the Mitch, the legend")},
			{Slug: "cats", Description: desc("Not dogs")},
			{Slug: "paper", Description: desc("what books are made of")},
		},
		users: []models.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/lurker.png"},
		},
		articles: map[int]*models.Article{
			1: {ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", Votes: 100, CreatedAt: time.Now()},
			4: {ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "lurker", Body: "We all love Mitch", CreatedAt: time.Now()},
			5: {ArticleID: 5, Title: "UNCOVERED: catspiracy", Topic: "cats", Author: "lurker", Body: "Bastet walks amongst us", CreatedAt: time.Now()},
		},
		comments: map[int]*models.Comment{
			16: {CommentID: 16, ArticleID: 1, Author: "butter_bridge", Body: "This is a bad article name", Votes: 1},
			17: {CommentID: 17, ArticleID: 5, Author: "lurker", Body: "The owls are not what they seem.", Votes: 20},
		},
		nextID: 100,
	}
	return m
}

func (m *memStore) stores() Stores {
	return Stores{
		Articles: memArticles{m},
		Comments: memComments{m},
		Topics:   memTopics{m},
		Users:    memUsers{m},
		Exists:   memExists{m},
		Health:   m,
	}
}

func (m *memStore) Ping(context.Context) error { return m.pingErr }

func (m *memStore) hasTopic(slug string) bool {
	for _, t := range m.topics {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

func (m *memStore) hasUser(username string) bool {
	for _, u := range m.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (m *memStore) commentCount(articleID int) int {
	n := 0
	for _, c := range m.comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

type memArticles struct{ m *memStore }

func (s memArticles) List(_ context.Context, q query.Query) ([]models.Article, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []models.Article
	for _, a := range s.m.articles {
		if strings.Contains(q.SQL, "WHERE articles.topic = ?") && a.Topic != q.Args[0] {
			continue
		}
		row := *a
		row.Body = ""
		row.CommentCount = s.m.commentCount(a.ArticleID)
		out = append(out, row)
	}
	return out, nil
}

func (s memArticles) Count(ctx context.Context, q query.Query) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var n int64
	for _, a := range s.m.articles {
		if len(q.Args) == 1 && a.Topic != q.Args[0] {
			continue
		}
		n++
	}
	return n, nil
}

func (s memArticles) FindByID(_ context.Context, id int) (*models.Article, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	a, ok := s.m.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := *a
	row.CommentCount = s.m.commentCount(id)
	return &row, nil
}

func (s memArticles) Add(_ context.Context, article *models.Article) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if !s.m.hasTopic(article.Topic) || !s.m.hasUser(article.Author) {
		return gorm.ErrForeignKeyViolated
	}
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	s.m.nextID++
	article.ArticleID = s.m.nextID
	article.CreatedAt = time.Now()
	row := *article
	s.m.articles[row.ArticleID] = &row
	return nil
}

func (s memArticles) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	s.m.mu.Lock()
	a, ok := s.m.articles[id]
	if ok {
		a.Votes += delta
	}
	s.m.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.FindByID(ctx, id)
}

func (s memArticles) Delete(_ context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.m.articles, id)
	for cid, c := range s.m.comments {
		if c.ArticleID == id {
			delete(s.m.comments, cid)
		}
	}
	return nil
}

type memComments struct{ m *memStore }

func (s memComments) List(_ context.Context, q query.Query) ([]models.Comment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []models.Comment
	for _, c := range s.m.comments {
		if c.ArticleID == q.Args[0] {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s memComments) FindByID(_ context.Context, id int) (*models.Comment, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	c, ok := s.m.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := *c
	return &row, nil
}

func (s memComments) Add(_ context.Context, comment *models.Comment) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.articles[comment.ArticleID]; !ok || !s.m.hasUser(comment.Author) {
		return gorm.ErrForeignKeyViolated
	}
	s.m.nextID++
	comment.CommentID = s.m.nextID
	row := *comment
	s.m.comments[row.CommentID] = &row
	return nil
}

func (s memComments) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	s.m.mu.Lock()
	c, ok := s.m.comments[id]
	if ok {
		c.Votes += delta
	}
	s.m.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.FindByID(ctx, id)
}

func (s memComments) Delete(_ context.Context, id int) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.comments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.m.comments, id)
	return nil
}

type memTopics struct{ m *memStore }

func (s memTopics) FindAll(context.Context) ([]models.Topic, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return append([]models.Topic(nil), s.m.topics...), nil
}

func (s memTopics) Add(_ context.Context, topic *models.Topic) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.hasTopic(topic.Slug) {
		return gorm.ErrDuplicatedKey
	}
	s.m.topics = append(s.m.topics, *topic)
	return nil
}

type memUsers struct{ m *memStore }

func (s memUsers) FindAll(context.Context) ([]models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return append([]models.User(nil), s.m.users...), nil
}

func (s memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, u := range s.m.users {
		if u.Username == username {
			row := u
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memExists struct{ m *memStore }

func (s memExists) Exists(_ context.Context, key query.ParentKey) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	switch v := key.Value().(type) {
	case string:
		return s.m.hasTopic(v), nil
	case int:
		_, ok := s.m.articles[v]
		return ok, nil
	}
	return false, nil
}
