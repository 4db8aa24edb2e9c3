package config

const (
	// DefaultConfigFile is the tool configuration file looked up in the current directory
	DefaultConfigFile = ".runcfg.toml"
	// DefaultSettingsFile is the per-folder settings file holding the configuration list
	DefaultSettingsFile = ".vscode/settings.json"
	// DefaultSettingsKey is the settings key holding the configuration list
	DefaultSettingsKey = "java.test.config"
	// DefaultLegacyConfig is the deprecated per-folder configuration file
	DefaultLegacyConfig = ".vscode/launch.test.json"
	// DefaultProcessors is the default number of processors
	DefaultProcessors = 4
)

// DefaultWorkspaces are the workspace folder roots used when none are configured
var DefaultWorkspaces = []string{"."}

// DefaultTestPatterns are the file name patterns recognised as tests
var DefaultTestPatterns = []string{
	"*Test.java",
	"*Tests.java",
	"*Test.php",
	"*_test.go",
}

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"target",
	"build",
	"bin",
	"out",
}
