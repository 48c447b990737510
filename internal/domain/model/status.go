package model

// Status is the schedule state of an event.
type Status string

const (
	StatusFinished    Status = "Finished"
	StatusScheduled   Status = "Scheduled"
	StatusRescheduled Status = "Rescheduled"
	StatusRunning     Status = "Running"
	StatusCancelled   Status = "Cancelled"
)

// String returns the raw upstream value.
func (s Status) String() string {
	return string(s)
}

// Known reports whether s is one of the enumerated statuses.
func (s Status) Known() bool {
	switch s {
	case StatusFinished, StatusScheduled, StatusRescheduled, StatusRunning, StatusCancelled:
		return true
	}
	return false
}

// Label returns the text shown on the event card badge.
func (s Status) Label() string {
	switch s {
	case StatusFinished:
		return "Finalizado"
	case StatusScheduled:
		return "Agendado"
	case StatusRescheduled:
		return "Remarcado"
	case StatusRunning:
		return "Hoje"
	case StatusCancelled:
		return "Cancelado"
	default:
		return "Status desconhecido"
	}
}

// Tone returns the badge style class for the status.
func (s Status) Tone() string {
	switch s {
	case StatusFinished:
		return "badge-finished"
	case StatusScheduled:
		return "badge-scheduled"
	case StatusRunning:
		return "badge-running"
	case StatusCancelled:
		return "badge-cancelled"
	default:
		// rescheduled shares the neutral tone with unknown statuses
		return "badge-neutral"
	}
}
