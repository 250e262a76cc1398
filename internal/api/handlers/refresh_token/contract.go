package refresh_token

import "github.com/m04kA/SMC-CalendarService/pkg/jwtauth"

type TokenRefresher interface {
	Refresh(refreshToken string) (*jwtauth.TokenPair, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
