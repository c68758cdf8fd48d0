package get_room_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("get_room_availability: invalid input data")

	// ErrRoomNotFound возвращается, когда аудитория не существует в каталоге
	ErrRoomNotFound = errors.New("get_room_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_availability: internal error")
)
