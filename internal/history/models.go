package history

import "time"

// Run is one recorded pipeline invocation.
type Run struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Source         string    `json:"source"`
	Method         string    `json:"method"`
	InputCount     int       `json:"input_count"`
	RecordCount    int       `json:"record_count"`
	RejectedCount  int       `json:"rejected_count"`
	DuplicateCount int       `json:"duplicate_count"`
	Username       string    `json:"username,omitempty"`
	SessionToken   string    `json:"session_token,omitempty"`
	OutputPath     string    `json:"output_path,omitempty"`
}
