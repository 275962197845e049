package commands

import (
	"Catalog/internal/cli/api"
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and log in" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	req := RegisterRequest{Username: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/register"), req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return api.ErrorFromBody(resp.StatusCode, body)
	}
	if err := api.PersistAuth(body, Tokens); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	_ = Logins.SaveLogin(req.Email)
	fmt.Fprintf(Out, "Registered %s\n", req.Username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }

func (registerCmd) Section() string { return "Account" }
