package refresh_token

// RefreshRequest HTTP запрос на обновление токенов
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
