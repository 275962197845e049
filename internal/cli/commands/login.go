package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth tokens" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{Email: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/login"), req, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuth(body, Tokens); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = Logins.SaveLogin(req.Email)
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid email or password")
	default:
		return api.ErrorFromBody(resp.StatusCode, body)
	}
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget stored auth tokens" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := Tokens.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}

func (loginCmd) Section() string  { return "Account" }
func (logoutCmd) Section() string { return "Account" }
