package login

import "github.com/univent-hse/Univent-VenueService/internal/service/auth"

// LoginRequest тело запроса на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse ответ с парой токенов
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *auth.LoginRequest {
	return &auth.LoginRequest{
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
