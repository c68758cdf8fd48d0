package moderate_application

import "errors"

var (
	// ErrAccessDenied возвращается, когда модерацию запрашивает не куратор и не админ
	ErrAccessDenied = errors.New("moderate_application: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("moderate_application: invalid input data")

	// ErrApplicationNotFound возвращается, когда заявка не существует
	ErrApplicationNotFound = errors.New("moderate_application: application not found")

	// ErrRoomRequired возвращается при одобрении без назначенной аудитории
	ErrRoomRequired = errors.New("moderate_application: approval requires an assigned room")

	// ErrRoomNotFound возвращается, когда назначенная аудитория не существует в каталоге
	ErrRoomNotFound = errors.New("moderate_application: assigned room not found")

	// ErrRoomConflict возвращается, когда аудитория уже занята другим
	// одобренным событием в пересекающемся интервале
	ErrRoomConflict = errors.New("moderate_application: room is already booked for this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("moderate_application: internal error")
)
