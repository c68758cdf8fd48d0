package get_available_rooms

import "time"

// Request модель запроса свободных аудиторий башни на интервал
type Request struct {
	Tower     string // "F" | "B"
	StartTime time.Time
	EndTime   time.Time
}

// RoomResponse модель аудитории в ответе
type RoomResponse struct {
	ID       int64  `json:"id"`
	Tower    string `json:"tower"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

// Response модель ответа со свободными аудиториями
type Response struct {
	Rooms []RoomResponse `json:"rooms"`
}
