package request_models

type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" binding:"required"`
	Type string   `json:"type,omitempty"`
}
