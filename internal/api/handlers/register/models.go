package register

import "github.com/univent-hse/Univent-VenueService/internal/service/auth"

// RegisterRequest тело запроса на регистрацию
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse ответ с парой токенов
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *auth.RegisterRequest {
	return &auth.RegisterRequest{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
	}
}

// FromTokenPair конвертирует пару токенов в HTTP ответ
func FromTokenPair(pair *auth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
