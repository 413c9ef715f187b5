package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:     "install",
	Aliases: []string{"i"},
	Short:   "Install the dependencies declared in package.json",
	Args:    cobra.NoArgs,
	RunE:    runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	p, _, log, err := newPnpm()
	if err != nil {
		return err
	}
	defer log.Close()

	start := time.Now()
	if err := runOp("Installing dependencies", p.Silent, p.Install); err != nil {
		return err
	}
	printDone("Dependencies installed", time.Since(start))
	return nil
}
