package domain

import "time"

const (
	IngestionSourceCSV    = "csv_upload"
	IngestionSourceManual = "manual_entry"
)

const (
	IngestionStatusSucceeded = "succeeded"
	IngestionStatusFailed    = "failed"
	IngestionStatusRejected  = "rejected"
)

// IngestionRun is an audit entry for one upload or manual submission.
type IngestionRun struct {
	ID                string    `json:"id"`
	Source            string    `json:"source"`
	FileName          string    `json:"file_name,omitempty"`
	RowsReceived      int       `json:"rows_received"`
	RowsValid         int       `json:"rows_valid"`
	Inserted          int       `json:"inserted"`
	Updated           int       `json:"updated"`
	Failed            int       `json:"failed"`
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	WorkflowTriggered bool      `json:"workflow_triggered"`
	CreatedAt         time.Time `json:"created_at"`
}

// SecondaryOutcome records a best-effort call made after the primary operation.
type SecondaryOutcome struct {
	Operation string `json:"operation"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}

// UploadOutcome is the two-phase result of an ingest: the upsert plus follow-up calls.
// Secondary failures never change Primary.
type UploadOutcome struct {
	Primary   UpsertResult       `json:"primary"`
	Secondary []SecondaryOutcome `json:"secondary"`
	RowsValid int                `json:"rows_valid"`
	Message   string             `json:"message"`
}
