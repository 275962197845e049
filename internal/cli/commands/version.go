package commands

import (
	"Catalog/internal/config"
	"context"
	"fmt"
)

// Version и BuildDate проставляются из main (ldflags).
var (
	Version   = "dev"
	BuildDate = "unknown"
)

type versionCmd struct{}

func (versionCmd) Name() string        { return "version" }
func (versionCmd) Description() string { return "Print client version" }
func (versionCmd) Usage() string       { return "version" }

func (versionCmd) Run(_ context.Context, _ *config.Config, _ []string) error {
	fmt.Fprintf(Out, "Catalog CLI\nVersion: %s\nBuild date: %s\n", Version, BuildDate)
	return nil
}

func init() { RegisterCmd(versionCmd{}) }
