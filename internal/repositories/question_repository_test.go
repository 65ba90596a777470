package repositories

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia/internal/models/db_models"
	"trivia/internal/testutil"
)

func newQuestionRepo(t *testing.T) (QuestionRepositoryInterface, []db_models.Question) {
	db := testutil.NewDB(t)
	testutil.SeedCategories(t, db)
	questions := testutil.SeedQuestions(t, db, 23)
	return NewQuestionRepository(db), questions
}

func ids(questions []db_models.Question) []int {
	out := make([]int, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestQuestionRepository_ListPage(t *testing.T) {
	repo, seeded := newQuestionRepo(t)
	ctx := context.Background()

	first, err := repo.ListPage(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, ids(seeded[:10]), ids(first))

	last, err := repo.ListPage(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, ids(seeded[20:]), ids(last))

	beyond, err := repo.ListPage(ctx, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	overflow, err := repo.ListPage(ctx, math.MaxInt/10+2, 10)
	require.NoError(t, err)
	assert.Empty(t, overflow)
}

func TestQuestionRepository_Count(t *testing.T) {
	repo, _ := newQuestionRepo(t)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 23, total)
}

func TestQuestionRepository_CreateGetDelete(t *testing.T) {
	repo, _ := newQuestionRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &db_models.Question{
		Question:   "What's my name?",
		Answer:     "Satas",
		Category:   5,
		Difficulty: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, db_models.Question{ID: id, Question: "What's my name?", Answer: "Satas", Category: 5, Difficulty: 1}, *got)

	byText, err := repo.GetByText(ctx, "What's my name?")
	require.NoError(t, err)
	require.NotNil(t, byText)
	assert.Equal(t, id, byText.ID)

	require.NoError(t, repo.Delete(ctx, id))

	gone, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestQuestionRepository_GetByTextIsExact(t *testing.T) {
	repo, _ := newQuestionRepo(t)
	ctx := context.Background()

	got, err := repo.GetByText(ctx, "question 1?")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByText(ctx, "Question 1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuestionRepository_Search(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCategories(t, db)
	a := testutil.AddQuestion(t, db, "What is the heaviest organ in the human body?", "The Liver", 1, 4)
	b := testutil.AddQuestion(t, db, "Who discovered penicillin?", "Alexander Fleming", 1, 3)
	c := testutil.AddQuestion(t, db, "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 4, 2)
	d := testutil.AddQuestion(t, db, "Is 100% of the Moon's surface mapped?", "Yes", 1, 2)
	e := testutil.AddQuestion(t, db, "Which painting hangs in the Musée du Louvre?", "Mona Lisa", 2, 1)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	tests := []struct {
		term string
		want []int
	}{
		{"", []int{a.ID, b.ID, c.ID, d.ID, e.ID}},
		{"musée", []int{e.ID}},
		{"LOUVRE", []int{e.ID}},
		{"WHO", []int{b.ID, c.ID}},
		{"human body", []int{a.ID}},
		{"100%", []int{d.ID}},
		{"%", []int{d.ID}},
		{"_", nil},
		{"nothing matches this", nil},
	}

	for _, tt := range tests {
		got, err := repo.Search(ctx, tt.term)
		require.NoError(t, err, tt.term)
		if tt.want == nil {
			assert.Empty(t, got, tt.term)
			continue
		}
		assert.Equal(t, tt.want, ids(got), tt.term)
	}
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	repo, seeded := newQuestionRepo(t)

	got, err := repo.ListByCategory(context.Background(), 2)
	require.NoError(t, err)

	var want []int
	for _, q := range seeded {
		if q.Category == 2 {
			want = append(want, q.ID)
		}
	}
	assert.Equal(t, want, ids(got))
	for _, q := range got {
		assert.Equal(t, 2, q.Category)
	}
}

func TestQuestionRepository_ListQuizCandidates(t *testing.T) {
	repo, seeded := newQuestionRepo(t)
	ctx := context.Background()

	all, err := repo.ListQuizCandidates(ctx, AllCategories, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(seeded))

	excluded := []int{seeded[0].ID, seeded[1].ID}
	rest, err := repo.ListQuizCandidates(ctx, AllCategories, excluded)
	require.NoError(t, err)
	assert.Equal(t, ids(seeded[2:]), ids(rest))

	science, err := repo.ListQuizCandidates(ctx, 1, []int{seeded[0].ID})
	require.NoError(t, err)
	for _, q := range science {
		assert.Equal(t, 1, q.Category)
		assert.NotEqual(t, seeded[0].ID, q.ID)
	}
	assert.Len(t, science, 3)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, escapeLike(`50% off_now \o/`))
}
