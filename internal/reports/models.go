package reports

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// CreateReportRequest asks for a progress report over the last Days
// days (default 30).
type CreateReportRequest struct {
	Format string `json:"format"`
	Days   int    `json:"days,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
