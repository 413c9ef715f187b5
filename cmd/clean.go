package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagLockfile bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete node_modules (and optionally the lockfile)",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVar(&flagLockfile, "lockfile", false, "also delete pnpm-lock.yaml")
}

func runClean(cmd *cobra.Command, args []string) error {
	p, _, log, err := newPnpm()
	if err != nil {
		return err
	}
	defer log.Close()

	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	if err := p.Clean(); err != nil {
		return err
	}
	fmt.Printf("  %s removed node_modules\n", ok.Render("✓"))

	if flagLockfile {
		if err := p.RemoveLockfile(); err != nil {
			return err
		}
		fmt.Printf("  %s removed pnpm-lock.yaml\n", ok.Render("✓"))
	}
	return nil
}
