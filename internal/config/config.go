// internal/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

const DefaultPath = "/etc/hibernate-setup/config.yaml"

// Paths holds every well-known file location the tool touches. The zero
// value is not usable; call Default or Load.
type Paths struct {
	GrubDefault     string `yaml:"grub_default"`
	ResumeHint      string `yaml:"resume_hint"`
	LogindDropInDir string `yaml:"logind_dropin_dir"`
	PolkitRulesDir  string `yaml:"polkit_rules_dir"`
	StateFile       string `yaml:"state_file"`
}

func Default() Paths {
	return Paths{
		GrubDefault:     "/etc/default/grub",
		ResumeHint:      "/etc/initramfs-tools/conf.d/resume",
		LogindDropInDir: "/etc/systemd/logind.conf.d",
		PolkitRulesDir:  "/etc/polkit-1/rules.d",
		StateFile:       "/etc/hibernate-setup/state.json",
	}
}

// Load reads an optional YAML override file. A missing file yields the stock
// Ubuntu defaults; fields left empty in the file keep their default too. Any
// other read failure (permissions, I/O) is fatal rather than silently
// falling back to defaults.
func Load(ctx context.Context, exec executor.Executor, path string) (Paths, error) {
	p := Default()

	data, err := exec.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return Paths{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var override Paths
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Paths{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if override.GrubDefault != "" {
		p.GrubDefault = override.GrubDefault
	}
	if override.ResumeHint != "" {
		p.ResumeHint = override.ResumeHint
	}
	if override.LogindDropInDir != "" {
		p.LogindDropInDir = override.LogindDropInDir
	}
	if override.PolkitRulesDir != "" {
		p.PolkitRulesDir = override.PolkitRulesDir
	}
	if override.StateFile != "" {
		p.StateFile = override.StateFile
	}
	return p, nil
}
