package fs

import (
	"Catalog/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// AuthFSStore — файловое хранилище токенов и контекста пользователя для CLI.
type AuthFSStore struct{}

var (
	_ repo.TokenStore       = AuthFSStore{}
	_ repo.UserContextStore = AuthFSStore{}
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "Catalog")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func filePath(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func tokenPath() (string, error)     { return filePath("auth_token") }
func refreshPath() (string, error)   { return filePath("refresh_token") }
func lastLoginPath() (string, error) { return filePath("last_login") }

// Save сохраняет access и refresh токены. Пустой refresh не перезаписывает сохранённый.
func (AuthFSStore) Save(accessToken, refreshToken string) error {
	if accessToken == "" {
		return errors.New("empty access token")
	}
	if err := writeFile(tokenPath, accessToken); err != nil {
		return err
	}
	if refreshToken == "" {
		return nil
	}
	return writeFile(refreshPath, refreshToken)
}

// Load читает access токен из файла.
func (AuthFSStore) Load() (string, error) {
	return readFile(tokenPath, "empty token file")
}

// LoadRefresh читает refresh токен из файла.
func (AuthFSStore) LoadRefresh() (string, error) {
	return readFile(refreshPath, "empty refresh token file")
}

// Clear удаляет сохранённые токены.
func (AuthFSStore) Clear() error {
	for _, pathFn := range []func() (string, error){tokenPath, refreshPath} {
		p, err := pathFn()
		if err != nil {
			return err
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

// SaveLogin сохраняет email пользователя в файл.
func (AuthFSStore) SaveLogin(email string) error {
	if email == "" {
		return errors.New("empty login")
	}
	return writeFile(lastLoginPath, email)
}

// LoadLogin читает email пользователя из файла.
func (AuthFSStore) LoadLogin() (string, error) {
	return readFile(lastLoginPath, "no stored login")
}

func writeFile(pathFn func() (string, error), value string) error {
	p, err := pathFn()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

func readFile(pathFn func() (string, error), emptyMsg string) (string, error) {
	p, err := pathFn()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	s := strings.TrimRight(string(b), "\r\n\t ")
	if s == "" {
		return "", errors.New(emptyMsg)
	}
	return s, nil
}
