package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/cli/repo"
	"Catalog/internal/cli/repo/fs"
	"Catalog/internal/config"
	"context"
	"errors"
	"net/http"
	"strings"
)

// Tokens — хранилище токенов CLI. В тестах подменяется.
var Tokens repo.TokenStore = fs.AuthFSStore{}

// Logins — хранилище email последнего входа.
var Logins repo.UserContextStore = fs.AuthFSStore{}

var errNotLoggedIn = errors.New("not logged in, run login first")

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// callAuthorized выполняет запрос с сохранённым access токеном.
// На 401 один раз пробует обновить токены по refresh токену и повторяет запрос.
func callAuthorized(ctx context.Context, cfg *config.Config, method, path string, payload any) (*http.Response, []byte, error) {
	token, err := Tokens.Load()
	if err != nil {
		return nil, nil, errNotLoggedIn
	}
	resp, body, err := api.DoJSON(ctx, method, endpoint(cfg, path), payload, token)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, body, err
	}
	if refreshErr := refreshTokens(ctx, cfg); refreshErr != nil {
		return resp, body, nil
	}
	token, err = Tokens.Load()
	if err != nil {
		return nil, nil, errNotLoggedIn
	}
	return api.DoJSON(ctx, method, endpoint(cfg, path), payload, token)
}

// callOptionalAuth — запрос с токеном, если пользователь вошёл, иначе анонимно.
func callOptionalAuth(ctx context.Context, cfg *config.Config, method, path string) (*http.Response, []byte, error) {
	if _, err := Tokens.Load(); err != nil {
		return api.DoJSON(ctx, method, endpoint(cfg, path), nil, "")
	}
	return callAuthorized(ctx, cfg, method, path, nil)
}

// refreshTokens меняет сохранённый refresh токен на новую пару.
func refreshTokens(ctx context.Context, cfg *config.Config) error {
	refresh, err := Tokens.LoadRefresh()
	if err != nil {
		return errNotLoggedIn
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/refresh-token"), map[string]string{"refreshToken": refresh}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ErrorFromBody(resp.StatusCode, body)
	}
	var data struct {
		Tokens struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		} `json:"tokens"`
	}
	if _, err := api.Decode(body, &data); err != nil {
		return err
	}
	return Tokens.Save(data.Tokens.AccessToken, data.Tokens.RefreshToken)
}

// expect проверяет код ответа и разбирает data в dst.
func expect(resp *http.Response, body []byte, want int, dst any) (*api.Envelope, error) {
	if resp.StatusCode != want {
		return nil, api.ErrorFromBody(resp.StatusCode, body)
	}
	if want == http.StatusNoContent {
		return &api.Envelope{Status: "success"}, nil
	}
	return api.Decode(body, dst)
}
