package execution

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"runcfg/internal/domain"
)

// ErrNoCommand is returned for configurations that do not say what to run
var ErrNoCommand = errors.New("configuration has no command")

// Params are the parts of a configuration the runner understands
type Params struct {
	Command []string          `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
	EnvFile string            `json:"envFile"`
	Cwd     string            `json:"cwd"`
}

// ParseParams decodes the execution parameters of cfg for a workspace folder.
// ${workspaceFolder} is replaced by the folder path in every string value.
func ParseParams(cfg *domain.ExecutionConfig, folder domain.WorkspaceFolder) (*Params, error) {
	var p Params
	if len(cfg.Raw) > 0 {
		if err := json.Unmarshal(cfg.Raw, &p); err != nil {
			return nil, fmt.Errorf("decode configuration %s: %w", cfg.DisplayName(), err)
		}
	}
	if len(p.Command) == 0 {
		return nil, ErrNoCommand
	}

	expand := func(s string) string {
		return strings.ReplaceAll(s, "${workspaceFolder}", folder.Path)
	}
	for i := range p.Command {
		p.Command[i] = expand(p.Command[i])
	}
	for i := range p.Args {
		p.Args[i] = expand(p.Args[i])
	}
	for k, v := range p.Env {
		p.Env[k] = expand(v)
	}
	p.EnvFile = expand(p.EnvFile)
	p.Cwd = expand(p.Cwd)

	if p.Cwd == "" {
		p.Cwd = folder.Path
	} else if !filepath.IsAbs(p.Cwd) {
		p.Cwd = filepath.Join(folder.Path, p.Cwd)
	}
	if p.EnvFile != "" && !filepath.IsAbs(p.EnvFile) {
		p.EnvFile = filepath.Join(folder.Path, p.EnvFile)
	}
	return &p, nil
}

// Environ returns the process environment with the env file and env entries
// applied on top, in that order
func (p *Params) Environ() ([]string, error) {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			values[k] = v
		}
	}

	if p.EnvFile != "" {
		fileEnv, err := godotenv.Read(p.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", p.EnvFile, err)
		}
		for k, v := range fileEnv {
			values[k] = v
		}
	}
	for k, v := range p.Env {
		values[k] = v
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+values[k])
	}
	return env, nil
}
