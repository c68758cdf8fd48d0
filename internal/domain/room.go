package domain

// Room is a bookable room from the read-only venue catalog
type Room struct {
	ID       int64
	Tower    Tower
	Number   string
	Capacity int
}
