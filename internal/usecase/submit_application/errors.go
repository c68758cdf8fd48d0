package submit_application

import "errors"

var (
	// ErrAccessDenied возвращается, когда заявку подает не студент
	ErrAccessDenied = errors.New("submit_application: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_application: invalid input data")

	// ErrInvalidTimeRange возвращается, когда start_time не раньше end_time
	ErrInvalidTimeRange = errors.New("submit_application: invalid time range")

	// ErrInvalidLocation возвращается при нарушении формы location
	// (location у ONLINE события, отсутствие location у OFFLINE,
	// неизвестная башня, несуществующая аудитория, пустой адрес)
	ErrInvalidLocation = errors.New("submit_application: invalid location")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_application: internal error")
)
