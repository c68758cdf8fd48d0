package get_me

import (
	"time"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
)

// UserResponse ответ с профилем текущего пользователя
type UserResponse struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	TelegramLinked bool      `json:"telegramLinked"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// FromDomainUser конвертирует domain модель в HTTP ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramLinked: u.TelegramChatID != nil,
		RegisteredAt:   u.CreatedAt,
	}
}
