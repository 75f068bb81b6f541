package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:mm
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength = 500
)

// TerminalStatuses статусы, после которых запись неизменяема
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}

// EditableStatuses статусы, в которых запись может редактироваться
var EditableStatuses = []AppointmentStatus{
	StatusPending,
	StatusInProgress,
}
