package domain

// State is the current position of a conversation in the menu flow.
// Exactly one state is active per session at any time.
type State string

const (
	StateMainMenu          State = "main_menu"
	StateSelectDomain      State = "select_domain"
	StateSelectRecord      State = "select_record"
	StateRecordActions     State = "record_actions"
	StateEditContent       State = "edit_content"
	StateAddRecordDomain   State = "add_record_domain"
	StateAddRecordType     State = "add_record_type"
	StateAddRecordName     State = "add_record_name"
	StateAddRecordContent  State = "add_record_content"
	StateConfirmDelete     State = "confirm_delete"
	StateSearchQuery       State = "search_query"
	StateChangeTypeSelect  State = "change_type_select"
	StateChangeTypeContent State = "change_type_content"
)

// Session is the per-user conversation context. It lives only for the
// duration of an interactive conversation and is never persisted.
type Session struct {
	UserID   int64
	Username string
	State    State

	// Browsing context for the active zone.
	Zones    []Zone
	ZoneID   string
	ZoneName string
	Records  []Record
	Page     int
	Selected *Record

	// Pending new-record flow.
	AddZoneID   string
	AddZoneName string
	AddType     string
	AddName     string

	// Pending type-change target.
	NewType string
}
