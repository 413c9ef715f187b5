package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagAddDev    bool
	flagAddGlobal bool
	flagAddParams []string
)

var addCmd = &cobra.Command{
	Use:   "add [packages...]",
	Short: "Add packages to the project",
	Long: `Add installs the named packages. With no names it behaves like
plain install. Extra pnpm parameters can be passed with --param and are
merged with any addParams from .pmxrc.yaml.`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&flagAddDev, "dev", "D", false, "save as dev dependency")
	addCmd.Flags().BoolVarP(&flagAddGlobal, "global", "g", false, "install globally")
	addCmd.Flags().StringArrayVarP(&flagAddParams, "param", "p", nil, "extra pnpm parameter (repeatable)")
	addCmd.MarkFlagsMutuallyExclusive("dev", "global")
}

func runAdd(cmd *cobra.Command, args []string) error {
	p, rc, log, err := newPnpm()
	if err != nil {
		return err
	}
	defer log.Close()

	params := append([]string{}, rc.AddParams...)
	params = append(params, flagAddParams...)
	if flagAddDev {
		params = append(params, "--save-dev")
	}
	if flagAddGlobal {
		params = append(params, "--global")
	}

	label := "Installing dependencies"
	if len(args) > 0 {
		label = fmt.Sprintf("Adding %s", strings.Join(args, ", "))
	}

	start := time.Now()
	if err := runOp(label, p.Silent, func() error { return p.AddWith(args, params) }); err != nil {
		return err
	}
	printDone(label, time.Since(start))
	return nil
}
