package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/utkarsh5026/grit/pkg/config"
	"github.com/utkarsh5026/grit/pkg/repository/scpath"
	"github.com/utkarsh5026/grit/pkg/repository/sourcerepo"
)

// session is an opened repository together with its merged configuration.
type session struct {
	repo   *sourcerepo.SourceRepository
	config *config.Manager
	typed  *config.TypedConfig
}

// workingDir returns -C when given, else the process working directory.
func (o *globalOptions) workingDir() (scpath.RepositoryPath, error) {
	dir := o.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}
	return scpath.NewRepositoryPath(dir)
}

// loadConfig builds the configuration for root (which may be empty outside
// a repository) and applies --config overrides.
func (o *globalOptions) loadConfig(ctx context.Context, root scpath.RepositoryPath) (*config.Manager, error) {
	mgr := config.NewManager(config.Options{RepositoryPath: root})
	if err := mgr.Load(ctx); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for _, kv := range o.configs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--config expects key=value, got %q", kv)
		}
		if err := mgr.SetCommandLine(key, value); err != nil {
			return nil, err
		}
	}
	return mgr, nil
}

// openSession locates the repository containing the working directory and
// opens it with its configuration applied.
func (o *globalOptions) openSession(ctx context.Context) (*session, error) {
	start, err := o.workingDir()
	if err != nil {
		return nil, err
	}
	root, err := sourcerepo.Locate(start)
	if err != nil {
		return nil, err
	}

	cfg, err := o.loadConfig(ctx, root)
	if err != nil {
		return nil, err
	}
	typed := config.NewTypedConfig(cfg)

	repo, err := sourcerepo.Open(root, sourcerepo.WithCompressionLevel(typed.CompressionLevel()))
	if err != nil {
		return nil, err
	}
	return &session{repo: repo, config: cfg, typed: typed}, nil
}
