package request_models

type CreateQuestionRequest struct {
	Question   string   `json:"question" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Difficulty *FlexInt `json:"difficulty" binding:"required"`
	Category   *FlexInt `json:"category" binding:"required"`
}

// SearchQuestionsRequest keeps the term as a pointer so that an explicit ""
// (match everything) is told apart from a missing key.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}
