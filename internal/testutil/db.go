// Package testutil provides in-memory databases seeded with trivia fixtures.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"trivia/internal/models/db_models"
)

// Seed categories, ids 1..6.
var Categories = []db_models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with the trivia tables.
// The pool is limited to one connection so every query sees the same data.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&db_models.Category{}, &db_models.Question{}))
	return db
}

// SeedCategories inserts Categories.
func SeedCategories(t *testing.T, db *gorm.DB) {
	t.Helper()
	categories := append([]db_models.Category(nil), Categories...)
	require.NoError(t, db.Create(&categories).Error)
}

// SeedQuestions inserts n questions cycling through the seeded categories.
// Question i has text "Question i?" and answer "Answer i".
func SeedQuestions(t *testing.T, db *gorm.DB, n int) []db_models.Question {
	t.Helper()
	if n == 0 {
		return nil
	}
	questions := make([]db_models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, db_models.Question{
			Question:   fmt.Sprintf("Question %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   (i-1)%len(Categories) + 1,
			Difficulty: (i-1)%5 + 1,
		})
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

// AddQuestion inserts a single question and returns it with its id set.
func AddQuestion(t *testing.T, db *gorm.DB, text, answer string, category, difficulty int) db_models.Question {
	t.Helper()
	q := db_models.Question{Question: text, Answer: answer, Category: category, Difficulty: difficulty}
	require.NoError(t, db.Create(&q).Error)
	return q
}

// CountQuestions returns the number of stored questions.
func CountQuestions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.Model(&db_models.Question{}).Count(&total).Error)
	return total
}

// CloseDB closes the pool behind db so every further query fails, the same
// way an unreachable database would.
func CloseDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
