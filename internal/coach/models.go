package coach

import "github.com/vitacoach/server/internal/storage"

type RecommendationsResponse struct {
	Recommendations []storage.AIRecommendation `json:"recommendations"`
}

type TipResponse struct {
	Tip string `json:"tip"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
