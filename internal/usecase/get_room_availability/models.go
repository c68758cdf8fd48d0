package get_room_availability

import "time"

// Request модель запроса занятости аудитории на день
type Request struct {
	RoomID int64
	Date   time.Time // полночь запрашиваемого дня
}

// BookedSlot занятый интервал аудитории
type BookedSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Response модель ответа с занятостью аудитории
type Response struct {
	Date        string       `json:"date"` // YYYY-MM-DD
	BookedSlots []BookedSlot `json:"bookedSlots"`
}
