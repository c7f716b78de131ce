package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/movsb/peerwire/cmd/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         `Encode and decode peer wire messages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP(`config`, `c`, ``, `path to a TOML config file`)
	rootCmd.PersistentFlags().String(`log-level`, ``, `log level: debug, info, warn, error`)

	wire.AddCommands(rootCmd)

	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
