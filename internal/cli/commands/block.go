package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

type blockCmd struct{}

func (blockCmd) Name() string        { return "block" }
func (blockCmd) Description() string { return "Hide your products from a user" }
func (blockCmd) Usage() string       { return "block <userId>" }

func (blockCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := userIDArg(args)
	if err != nil {
		return err
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodPost, fmt.Sprintf("/users/%d/block", id), nil)
	if err != nil {
		return err
	}
	if _, err := expect(resp, body, http.StatusCreated, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User %d blocked\n", id)
	return nil
}

type unblockCmd struct{}

func (unblockCmd) Name() string        { return "unblock" }
func (unblockCmd) Description() string { return "Show your products to a user again" }
func (unblockCmd) Usage() string       { return "unblock <userId>" }

func (unblockCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := userIDArg(args)
	if err != nil {
		return err
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodDelete, fmt.Sprintf("/users/%d/unblock", id), nil)
	if err != nil {
		return err
	}
	env, err := expect(resp, body, http.StatusOK, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, env.Message)
	return nil
}

type blockedCmd struct{}

func (blockedCmd) Name() string        { return "blocked" }
func (blockedCmd) Description() string { return "List users you have blocked" }
func (blockedCmd) Usage() string       { return "blocked" }

func (blockedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := callAuthorized(ctx, cfg, http.MethodGet, "/blocked-users", nil)
	if err != nil {
		return err
	}
	var data struct {
		BlockedUsers []struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"blockedUsers"`
	}
	if _, err := expect(resp, body, http.StatusOK, &data); err != nil {
		return err
	}
	if len(data.BlockedUsers) == 0 {
		fmt.Fprintln(Out, "Nobody is blocked")
		return nil
	}
	for _, u := range data.BlockedUsers {
		fmt.Fprintf(Out, "- %d  %s\n", u.ID, u.Username)
	}
	return nil
}

func userIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func init() {
	RegisterCmd(blockCmd{})
	RegisterCmd(unblockCmd{})
	RegisterCmd(blockedCmd{})
}

func (blockCmd) Section() string   { return "Blocking" }
func (unblockCmd) Section() string { return "Blocking" }
func (blockedCmd) Section() string { return "Blocking" }
