package main

import (
	"errors"
	"io"

	"github.com/alnah/go-maintpage"
	"github.com/alnah/go-maintpage/internal/config"
)

// resolveSettings builds the effective settings for build and check.
// An explicit --config or MAINTPAGE_CONFIG must exist; the default
// maintpage.yaml is optional and DefaultConfig applies without it.
// Returns the settings file path, empty when none was read.
func resolveSettings(f *buildFlags, stderr io.Writer) (*config.Config, string, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(stderr)

	searchDir := "."
	if envCfg.Root != "" {
		searchDir = envCfg.Root
	}
	if f.common.root != "" {
		searchDir = f.common.root
	}

	name := envCfg.ConfigPath
	if f.common.config != "" {
		name = f.common.config
	}

	var cfg *config.Config
	var path string
	var err error
	if name != "" {
		cfg, path, err = config.LoadConfig(name, searchDir)
		if err != nil {
			return nil, "", err
		}
	} else {
		cfg, path, err = config.LoadConfig(config.DefaultName, searchDir)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, path, err = config.DefaultConfig(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// mergeFlags applies the flags set on the command line to settings.
// Unset flags leave settings untouched, so zero values such as
// --minify-level 0 still override when given explicitly.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	if f.changed["root"] {
		cfg.Root = f.common.root
	}

	// Inputs
	if f.changed["data"] {
		cfg.Data = f.input.data
	}
	if f.changed["template-dir"] {
		cfg.Template.Dir = f.input.templateDir
	}
	if f.changed["template"] {
		cfg.Template.Name = f.input.templateName
	}

	// Style
	if f.changed["style"] {
		cfg.Style.Source = f.style.source
	}
	if f.changed["load-path"] {
		cfg.Style.LoadPaths = f.style.loadPaths
	}
	if f.changed["precision"] {
		cfg.Style.Precision = f.style.precision
	}

	// Purge
	if f.changed["content"] {
		cfg.Purge.Content = f.purge.content
	}
	if f.changed["safelist"] {
		cfg.Purge.Safelist.Standard = f.purge.standard
	}
	if f.changed["safelist-deep"] {
		cfg.Purge.Safelist.Deep = f.purge.deep
	}
	if f.changed["safelist-greedy"] {
		cfg.Purge.Safelist.Greedy = f.purge.greedy
	}
	if f.changed["rejected"] {
		cfg.Purge.Rejected = f.purge.rejected
	}

	// Output
	if f.changed["minify-level"] {
		cfg.Minify.Level = f.output.level
	}
	if f.changed["output"] {
		cfg.Output.Path = f.output.path
	}
	if f.changed["atomic"] {
		cfg.Output.Atomic = f.output.atomic
	}
}

// jobFromConfig turns validated settings into a build job with every path
// resolved against the project root.
func jobFromConfig(cfg *config.Config) maintpage.Job {
	loadPaths := make([]string, len(cfg.Style.LoadPaths))
	for i, p := range cfg.Style.LoadPaths {
		loadPaths[i] = cfg.Resolve(p)
	}

	content := make([]maintpage.Content, len(cfg.Purge.Content))
	for i, c := range cfg.Purge.Content {
		content[i] = maintpage.Content{Path: cfg.Resolve(c)}
	}

	return maintpage.Job{
		DataPath:    cfg.Resolve(cfg.Data),
		StyleSource: cfg.Resolve(cfg.Style.Source),
		LoadPaths:   loadPaths,
		Content:     content,
		Safelist: maintpage.Safelist{
			Standard: cfg.Purge.Safelist.Standard,
			Deep:     cfg.Purge.Safelist.Deep,
			Greedy:   cfg.Purge.Safelist.Greedy,
		},
		MinifyLevel:  maintpage.Level(cfg.Minify.Level),
		TemplateDir:  cfg.Resolve(cfg.Template.Dir),
		TemplateName: cfg.Template.Name,
		OutputPath:   cfg.Resolve(cfg.Output.Path),
	}
}
