package domain

// Action identifies the kind of mutation recorded in the change log.
type Action string

const (
	ActionCreate      Action = "CREATE"
	ActionUpdate      Action = "UPDATE"
	ActionDelete      Action = "DELETE"
	ActionProxyToggle Action = "PROXY_TOGGLE"
)

// TimeLayout is the timestamp format used in change-log entries.
const TimeLayout = "2006-01-02 15:04:05"

// ChangeEntry is one line of the append-only audit trail. Immutable once
// written.
type ChangeEntry struct {
	Timestamp  string `json:"timestamp"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Action     Action `json:"action"`
	Domain     string `json:"domain"`
	RecordName string `json:"record_name"`
	Details    string `json:"details"`
}
