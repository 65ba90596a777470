package repositories

import (
	"context"

	"gorm.io/gorm"

	"trivia/internal/infra"
)

// Repositories groups the repositories bound to a single database connection.
type Repositories struct {
	Categories CategoryRepositoryInterface
	Questions  QuestionRepositoryInterface
}

// Store hands out connection-scoped repositories. The connection is taken from
// the pool when Run starts and returned when fn returns, whatever the outcome.
type Store interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
	Ping(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Run(ctx context.Context, fn func(repos Repositories) error) error {
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// A fresh session keeps conditions from one query out of the next.
		conn = conn.Session(&gorm.Session{})
		return fn(Repositories{
			Categories: NewCategoryRepository(conn),
			Questions:  NewQuestionRepository(conn),
		})
	})
}

func (s *gormStore) Ping(ctx context.Context) error {
	return infra.Ping(ctx, s.db)
}
