package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kb-labs/pmx/internal/pm"
	"github.com/kb-labs/pmx/internal/project"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show project and pnpm info",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}

	// Version and Config run in captured mode; no logger needed.
	p := &pm.Pnpm{Dir: dir}

	version, err := p.Version()
	if err != nil {
		return fmt.Errorf("pnpm not available: %w", err)
	}
	registry, err := p.Config("registry")
	if err != nil {
		return err
	}

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	val := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	ok := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	fmt.Println()
	fmt.Printf("  %s %s\n", label.Render("pnpm:    "), val.Render(version))
	fmt.Printf("  %s %s\n", label.Render("registry:"), registry)
	fmt.Printf("  %s %s\n", label.Render("project: "), val.Render(dir))

	if !project.Exists(dir) {
		fmt.Printf("\n  %s\n\n", dimStr("no package.json found"))
		return nil
	}

	pkg, err := project.Load(dir)
	if err != nil {
		return err
	}

	fmt.Printf("  %s %s %s\n\n", label.Render("package: "), pkg.Name, dimStr(pkg.Version))

	if deps := pkg.DependencyNames(); len(deps) > 0 {
		fmt.Printf("  %s\n", label.Render("Dependencies:"))
		for _, name := range deps {
			marker := ""
			if pkg.IsDev(name) {
				marker = "  (dev)"
			}
			fmt.Printf("    %s %-30s  %s\n", ok.Render("●"), name, dimStr(pkg.SpecOf(name)+marker))
		}
	}

	fmt.Println()
	return nil
}

func dimStr(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(s)
}
