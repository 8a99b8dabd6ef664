// Command modorder inspects a directory of module manifests and reports
// the dependency-safe load order, parallel load groups, and any
// resolution problems.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	modorder "github.com/albertocavalcante/go-modorder"
	"github.com/albertocavalcante/go-modorder/depgraph"
	"github.com/albertocavalcante/go-modorder/discovery"
)

var (
	manifestDir string
	lenient     bool
	verbose     bool
	graphFormat string

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00BFFF"))
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00FF00"))
	problemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD93D"))

	rootCmd = &cobra.Command{
		Use:   "modorder",
		Short: "Resolve module load order from manifest files",
		Long: `modorder reads module manifests (YAML) from a directory, builds the
dependency graph, and answers load-order questions: which order is safe,
which modules can initialize in parallel, and what is broken.`,
	}
	orderCmd = &cobra.Command{
		Use:   "order",
		Short: "Print the dependencies-first load order",
		RunE:  runOrder,
	}
	groupsCmd = &cobra.Command{
		Use:   "groups",
		Short: "Print parallel load groups",
		RunE:  runGroups,
	}
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the manifests and report every problem",
		RunE:  runCheck,
	}
	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Render the dependency graph",
		RunE:  runGraph,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, problemStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestDir, "dir", "d", "modules", "directory containing module manifests")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "allow references to undeclared modules as placeholders")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	graphCmd.Flags().StringVar(&graphFormat, "format", "text", "graph output format: text or dot")

	rootCmd.AddCommand(orderCmd, groupsCmd, checkCmd, graphCmd)
}

// loadResolver reads the manifest directory and builds a validated
// resolver. A failed validation is returned as an error carrying the
// full problem report.
func loadResolver() (*modorder.Resolver, error) {
	files, err := discovery.LoadDir(manifestDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifests found in %s", manifestDir)
	}

	opts := []modorder.Option{}
	if lenient {
		opts = append(opts, modorder.WithPolicy(depgraph.Lenient))
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, modorder.WithLogger(logger))
	}

	r, res, err := modorder.Resolve(discovery.Descriptors(files), opts...)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, fmt.Errorf("resolution failed:\n%s", res.Report())
	}
	return r, nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	r, err := loadResolver()
	if err != nil {
		return err
	}
	order, err := r.ResolveLoadOrder()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Load order"))
	for i, name := range order {
		fmt.Printf("%3d. %s\n", i+1, name)
	}
	return nil
}

func runGroups(cmd *cobra.Command, args []string) error {
	r, err := loadResolver()
	if err != nil {
		return err
	}
	groups, err := r.ParallelLoadGroups()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("Parallel load groups"))
	for i, group := range groups {
		fmt.Printf("%s %v\n", groupStyle.Render(fmt.Sprintf("group %d:", i+1)), group)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := discovery.LoadDir(manifestDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no manifests found in %s", manifestDir)
	}

	opts := []modorder.Option{}
	if lenient {
		opts = append(opts, modorder.WithPolicy(depgraph.Lenient))
	}
	_, res, err := modorder.Resolve(discovery.Descriptors(files), opts...)
	if err != nil {
		return err
	}
	if res.OK() {
		fmt.Println(okStyle.Render(fmt.Sprintf("ok: %d modules, no problems", len(files))))
		return nil
	}
	fmt.Println(problemStyle.Render(fmt.Sprintf("%d problem(s):", len(res.Problems))))
	for _, p := range res.Problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(1)
	return nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	r, err := loadResolver()
	if err != nil {
		return err
	}
	switch graphFormat {
	case "dot":
		fmt.Print(r.DependencyGraph().ToDOT())
	case "text":
		fmt.Print(r.DependencyGraph().ToText())
	default:
		return fmt.Errorf("unknown format %q (want text or dot)", graphFormat)
	}
	return nil
}
