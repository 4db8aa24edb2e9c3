package commands

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"runcfg/internal/cli"
	"runcfg/internal/config"
	"runcfg/internal/discovery"
	"runcfg/internal/domain"
	"runcfg/internal/logging"
	"runcfg/internal/resolver"
	"runcfg/internal/settings"
	"runcfg/internal/storage"
	"runcfg/internal/ui"
	"runcfg/internal/workspace"
)

// Dependencies are the components shared by the commands
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Folders   *workspace.Folders
	Settings  *settings.FileProvider
	Resolver  *resolver.Resolver
	Collector *discovery.Collector
	Formatter *ui.Formatter
}

// NewDependencies wires the components for cfg. Output goes to out, warnings to errOut.
func NewDependencies(cfg *config.Config, logger *zap.Logger, out, errOut io.Writer) *Dependencies {
	folders := workspace.NewFolders(cfg.GetWorkspaces())
	settingsProvider := settings.NewFileProvider(cfg, logger)
	res := resolver.New(
		settingsProvider,
		folders,
		storage.NewFileStore(),
		ui.NewNotifier(errOut),
		ui.NewPicker(),
		resolver.WithLegacyPath(cfg.LegacyConfig),
		resolver.WithLogger(logger),
	)
	collector := discovery.NewCollector(
		discovery.NewScanner(cfg.TestPatterns, cfg.PathsToIgnore),
		discovery.NewFilter(),
	)

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Folders:   folders,
		Settings:  settingsProvider,
		Resolver:  res,
		Collector: collector,
		Formatter: ui.NewFormatter(out),
	}
}

// Commands holds all CLI commands
type Commands struct {
	deps    *Dependencies
	Resolve *ResolveCommand
	List    *ListCommand
	Run     *RunCommand
}

// NewCommands creates all commands. Their dependencies are wired once flags
// have been parsed.
func NewCommands() *Commands {
	c := &Commands{deps: &Dependencies{}}
	c.Resolve = NewResolveCommand(c.deps)
	c.List = NewListCommand(c.deps)
	c.Run = NewRunCommand(c.deps)
	return c
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", config.DefaultConfigFile, "Path to the runcfg TOML configuration file")
	rootCmd.PersistentFlags().StringArrayVarP(&flags.Workspaces, "workspace", "w", nil, "Workspace folder root (repeatable, overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print diagnostic logs")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags.ConfigFile)
		if err != nil {
			return err
		}
		cfg.Apply(flags.ToConfigFlags())
		*c.deps = *NewDependencies(cfg, logging.New(flags.Verbose), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	}

	// Resolve command
	resolveCmd := &cobra.Command{
		Use:   "resolve [paths...]",
		Short: "Select the test configuration for the given paths",
		Long:  "Resolve which test configuration applies to the given test paths and print it",
		RunE:  c.Resolve.Execute,
	}
	resolveCmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Use the debug group of the deprecated configuration file")
	resolveCmd.Flags().BoolVar(&flags.UseDefault, "default", false, "Pick the default configuration without prompting")
	rootCmd.AddCommand(resolveCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [folders...]",
		Short: "List test configurations",
		Long:  "List the test configurations of each workspace folder, from the settings file and the deprecated configuration file",
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run tests with the selected configuration",
		Long:  "Discover tests under the given paths, select a test configuration and execute the tests in parallel",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVarP(&flags.Debug, "debug", "d", false, "Use the debug group of the deprecated configuration file")
	runCmd.Flags().BoolVar(&flags.UseDefault, "default", false, "Pick the default configuration without prompting")
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of processors to use (default from config)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. '*UserTest.java' or '*Payment*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	rootCmd.AddCommand(runCmd)
}

// targets returns args, or the workspace roots when no args were given
func (d *Dependencies) targets(args []string) []string {
	if len(args) > 0 {
		return args
	}
	var roots []string
	for _, folder := range d.Folders.List() {
		roots = append(roots, folder.Path)
	}
	return roots
}

// locationItems turns paths into test items without scanning directories
func locationItems(paths []string) []domain.TestItem {
	items := make([]domain.TestItem, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		items = append(items, domain.TestItem{ID: p, Location: p})
	}
	return items
}
