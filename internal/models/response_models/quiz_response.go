package response_models

// QuizResponse carries a null question once every candidate has been seen.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}
