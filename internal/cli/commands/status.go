package commands

import (
	"Catalog/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the logged in user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodGet, "/profile", nil)
	if errors.Is(err, errNotLoggedIn) {
		fmt.Fprintln(Out, "Status: anonymous")
		return nil
	}
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		fmt.Fprintln(Out, "Status: anonymous (session expired)")
		return nil
	}
	var data struct {
		User struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Status: logged in as %s <%s> (id %d)\n", data.User.Username, data.User.Email, data.User.ID)
	return nil
}

type refreshCmd struct{}

func (refreshCmd) Name() string        { return "refresh" }
func (refreshCmd) Description() string { return "Rotate stored tokens using the refresh token" }
func (refreshCmd) Usage() string       { return "refresh" }

func (refreshCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := refreshTokens(ctx, cfg); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Tokens refreshed")
	return nil
}

func init() {
	RegisterCmd(statusCmd{})
	RegisterCmd(refreshCmd{})
}

func (statusCmd) Section() string  { return "Account" }
func (refreshCmd) Section() string { return "Account" }
