package login

import "github.com/m04kA/SMC-CalendarService/pkg/jwtauth"

// LoginRequest HTTP запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse пара токенов
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// FromTokenPair конвертирует пару токенов в HTTP ответ
func FromTokenPair(pair *jwtauth.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}
