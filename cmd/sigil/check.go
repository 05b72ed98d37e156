package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/th3oth3rjak3/Sigil/internal/cli"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Type-check a Sigil source file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg, _, c, err := loadRuntime(root, filepath.Dir(path))
			if err != nil {
				return err
			}

			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			result := cli.Check(string(source), cfg, c)
			if result.HadError {
				fmt.Fprint(os.Stderr, cli.RenderSink(result.Sink, cfg))
				return fmt.Errorf("%s failed to type-check", path)
			}

			fmt.Printf("%s: ok\n", path)

			return nil
		},
	}

	return cmd
}
