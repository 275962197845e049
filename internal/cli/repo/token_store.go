package repo

// TokenStore описывает абстракцию хранилища токенов на клиенте.
type TokenStore interface {
	Save(accessToken, refreshToken string) error
	Load() (string, error)
	LoadRefresh() (string, error)
	Clear() error
}
