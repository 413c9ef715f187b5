package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kb-labs/pmx/internal/picker"
	"github.com/kb-labs/pmx/internal/project"
)

var removeCmd = &cobra.Command{
	Use:     "remove [packages...]",
	Aliases: []string{"rm"},
	Short:   "Remove packages from the project",
	Long: `Remove uninstalls the named packages. With no names on an
interactive terminal, a checklist of the project's declared dependencies
is shown instead.`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	p, _, log, err := newPnpm()
	if err != nil {
		return err
	}
	defer log.Close()

	names := args
	if len(names) == 0 {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("no packages named — pass names or run on a terminal")
		}
		names, err = pickRemovals(p.Dir)
		if errors.Is(err, picker.ErrCancelled) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("Nothing selected.")
			return nil
		}
	}

	label := fmt.Sprintf("Removing %s", strings.Join(names, ", "))
	start := time.Now()
	if err := runOp(label, p.Silent, func() error { return p.Remove(names) }); err != nil {
		return err
	}
	printDone(label, time.Since(start))
	return nil
}

// pickRemovals shows the dependency checklist for the project in dir.
func pickRemovals(dir string) ([]string, error) {
	pkg, err := project.Load(dir)
	if err != nil {
		return nil, err
	}

	deps := pkg.DependencyNames()
	if len(deps) == 0 {
		return nil, fmt.Errorf("no dependencies declared in %s", project.Path(dir))
	}

	items := make([]picker.Item, len(deps))
	for i, name := range deps {
		detail := pkg.SpecOf(name)
		if pkg.IsDev(name) {
			detail += "  (dev)"
		}
		items[i] = picker.Item{Name: name, Detail: detail}
	}
	return picker.Run("select packages to remove", items)
}
