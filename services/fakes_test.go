package services

import (
	"context"
	"sync"

	"github.com/rpupo63/news-board-backend/models"
	"github.com/rpupo63/news-board-backend/query"
	"gorm.io/gorm"
)

type fakeArticleStore struct {
	mu       sync.Mutex
	rows     []models.Article
	total    int64
	byID     map[int]*models.Article
	listErr  error
	addErr   error
	listHook func(ctx context.Context) error

	lastList  query.Query
	lastCount query.Query
	added     []*models.Article
	deleted   []int
}

func (f *fakeArticleStore) List(ctx context.Context, q query.Query) ([]models.Article, error) {
	if f.listHook != nil {
		if err := f.listHook(ctx); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = q
	return f.rows, f.listErr
}

func (f *fakeArticleStore) Count(_ context.Context, q query.Query) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCount = q
	return f.total, nil
}

func (f *fakeArticleStore) FindByID(_ context.Context, id int) (*models.Article, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeArticleStore) Add(_ context.Context, article *models.Article) error {
	if f.addErr != nil {
		return f.addErr
	}
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	article.ArticleID = len(f.added) + 100
	f.added = append(f.added, article)
	return nil
}

func (f *fakeArticleStore) IncrementVotes(_ context.Context, id, delta int) (*models.Article, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Votes += delta
	cp := *a
	return &cp, nil
}

func (f *fakeArticleStore) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCommentStore struct {
	rows     []models.Comment
	byID     map[int]*models.Comment
	addErr   error
	listHook func(ctx context.Context) error

	lastList query.Query
	added    []*models.Comment
}

func (f *fakeCommentStore) List(ctx context.Context, q query.Query) ([]models.Comment, error) {
	if f.listHook != nil {
		if err := f.listHook(ctx); err != nil {
			return nil, err
		}
	}
	f.lastList = q
	return f.rows, nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id int) (*models.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentStore) Add(_ context.Context, comment *models.Comment) error {
	if f.addErr != nil {
		return f.addErr
	}
	comment.CommentID = len(f.added) + 1
	f.added = append(f.added, comment)
	return nil
}

func (f *fakeCommentStore) IncrementVotes(_ context.Context, id, delta int) (*models.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Votes += delta
	cp := *c
	return &cp, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeExistence answers from a fixed set of present parents.
type fakeExistence struct {
	mu      sync.Mutex
	present map[any]bool
	calls   []query.ParentKey
	hook    func()
}

func (f *fakeExistence) Exists(_ context.Context, key query.ParentKey) (bool, error) {
	if f.hook != nil {
		f.hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	return f.present[key.Value()], nil
}

type fakeTopicStore struct {
	topics []models.Topic
	addErr error
}

func (f *fakeTopicStore) FindAll(context.Context) ([]models.Topic, error) {
	return f.topics, nil
}

func (f *fakeTopicStore) Add(_ context.Context, topic *models.Topic) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.topics = append(f.topics, *topic)
	return nil
}

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindAll(context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
