package domain

import "time"

// ApplicationStatus represents the moderation state of an event application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Application represents a submitted request to hold an event.
// It is created as pending and moderated by a curator, who either rejects it
// or approves it with an assigned room.
type Application struct {
	ID                   int64
	OrganizerID          int64
	Title                string
	Description          string
	ExpectedParticipants int
	Needs                *string // оборудование и прочие пожелания организатора

	StartTime time.Time
	EndTime   time.Time

	EventType EventType
	Location  *Location // nil для ONLINE событий

	Status         ApplicationStatus
	AssignedRoomID *int64 // заполняется только при одобрении
	CuratorComment *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the application has not been moderated yet
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}

// IsApproved returns true if the application has been approved
func (a *Application) IsApproved() bool {
	return a.Status == StatusApproved
}

// Overlaps reports whether the application's [StartTime, EndTime) interval
// intersects the half-open interval [start, end).
// Touching boundaries (one interval ending exactly when another starts) do
// not count as an overlap, and a zero-duration interval overlaps nothing.
func (a *Application) Overlaps(start, end time.Time) bool {
	if !start.Before(end) || !a.StartTime.Before(a.EndTime) {
		return false
	}
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// ApplicationsFilter фильтр для выборки заявок куратором/администратором
type ApplicationsFilter struct {
	OrganizerID *int64             // nil - заявки всех организаторов
	Status      *ApplicationStatus // nil - любой статус
}

// CalendarWindow optional inclusive date window for the public calendar.
// A record is kept when EndTime >= From and StartTime <= To.
type CalendarWindow struct {
	From *time.Time
	To   *time.Time
}
