package response_models

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
