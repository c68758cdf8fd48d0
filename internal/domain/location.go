package domain

// EventType discriminates online events from offline ones
type EventType string

const (
	EventTypeOnline  EventType = "ONLINE"
	EventTypeOffline EventType = "OFFLINE"
)

// IsValid returns true for a known event type
func (t EventType) IsValid() bool {
	return t == EventTypeOnline || t == EventTypeOffline
}

// LocationType discriminates the location variants of an offline event
type LocationType string

const (
	// LocationTypeDukat is a room inside the Dukat building (tower + room number)
	LocationTypeDukat LocationType = "dukat"

	// LocationTypeCustom is a free-form address outside the Dukat building
	LocationTypeCustom LocationType = "custom"
)

// Tower identifies a tower of the Dukat building
type Tower string

const (
	TowerF Tower = "F"
	TowerB Tower = "B"
)

// IsValid returns true for a known tower
func (t Tower) IsValid() bool {
	return t == TowerF || t == TowerB
}

// Location is the tagged location variant of an OFFLINE event.
// Exactly one variant is populated: dukat carries Tower and RoomNumber,
// custom carries Address.
type Location struct {
	Type       LocationType
	Tower      *Tower
	RoomNumber *string
	Address    *string
}

// IsDukat returns true for a named-venue (Dukat) location
func (l *Location) IsDukat() bool {
	return l.Type == LocationTypeDukat
}

// IsCustom returns true for a free-form address location
func (l *Location) IsCustom() bool {
	return l.Type == LocationTypeCustom
}
