package worker

// ReminderNotifyMessage is the WebSocket message protocol forwarded to the
// frontend via Redis Pub/Sub. Field names must stay in sync with the client.
type ReminderNotifyMessage struct {
	Status        string         `json:"status"`
	CorrelationID string         `json:"correlation_id"`
	ErrorCode     int            `json:"error_code"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	Reminders     []ReminderItem `json:"reminders,omitempty"`
}

// ReminderItem describes one application that has gone quiet.
type ReminderItem struct {
	JobApplyID  uint   `json:"job_apply_id"`
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	Status      string `json:"status"`
	DaysStale   int    `json:"days_stale"`
}
