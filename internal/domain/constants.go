package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxListSize фиксированный верхний предел выборки заявок и событий
const MaxListSize = 1000

// Business validation constants
const (
	MaxTitleLength   = 200
	MaxCommentLength = 500
	MinParticipants  = 1
)
