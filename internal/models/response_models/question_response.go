package response_models

import "trivia/internal/models/db_models"

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

func NewQuestion(q db_models.Question) Question {
	return Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

func NewQuestions(questions []db_models.Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestion(q))
	}
	return out
}

// QuestionList is shared by search and by-category listings. CurrentCategory
// is null when the list was not filtered by category.
type QuestionList struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions"`
	CurrentCategory *int       `json:"current_category"`
}

type QuestionPage struct {
	QuestionList
	Categories CategoryMap `json:"categories"`
}

type CreateQuestionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Created int    `json:"created"`
}

type DeleteQuestionResponse struct {
	Success   bool `json:"success"`
	DeletedID int  `json:"deleted_id"`
}
