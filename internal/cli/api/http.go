package api

import (
	"Catalog/internal/cli/repo"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Envelope — конверт ответа сервера каталога.
type Envelope struct {
	Status  string          `json:"status"`
	Results *int            `json:"results,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DoJSON отправляет запрос с JSON телом (payload может быть nil). Непустой token уходит в Authorization: Bearer.
func DoJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, respBody, nil
}

// PostJSON — короткая форма DoJSON для POST.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodPost, url, payload, token)
}

// Decode разбирает конверт и, если dst не nil, его поле data.
func Decode(body []byte, dst any) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if dst != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return &env, nil
}

// ErrorFromBody строит ошибку из ответа с кодом не 2xx: message из конверта или сырое тело.
func ErrorFromBody(status int, body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return fmt.Errorf("%s (status %d)", env.Message, status)
	}
	return fmt.Errorf("server status %d: %s", status, strings.TrimSpace(string(body)))
}

type authPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// PersistAuth извлекает токены из ответа register/login и сохраняет их.
func PersistAuth(body []byte, store repo.TokenStore) error {
	var p authPayload
	if _, err := Decode(body, &p); err != nil {
		return err
	}
	if p.AccessToken == "" {
		return errors.New("no access token in response")
	}
	return store.Save(p.AccessToken, p.RefreshToken)
}
