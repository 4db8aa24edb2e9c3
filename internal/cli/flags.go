package cli

import "runcfg/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Workspaces []string
	Verbose    bool
	Debug      bool
	UseDefault bool
	Processors int
	NameFilter string
	FailFast   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workspaces: f.Workspaces,
		Verbose:    f.Verbose,
		Debug:      f.Debug,
		UseDefault: f.UseDefault,
		Processors: f.Processors,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
	}
}
