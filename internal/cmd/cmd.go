package cmd

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/koskimas/propgen/internal/config"
	"github.com/koskimas/propgen/internal/gen"
	"github.com/koskimas/propgen/internal/model/schema"
	"go.uber.org/zap"
)

type Settings struct {
	WorkingDir string
	// ConfigFile is relative to WorkingDir. Defaults to `config.DefaultFile`.
	ConfigFile string
	Logger     *zap.Logger
}

func Run(s Settings) error {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	configFile := s.ConfigFile
	if configFile == "" {
		configFile = config.DefaultFile
	}

	cfg, err := config.Read(filepath.Join(s.WorkingDir, configFile))
	if err != nil {
		return err
	}

	files, err := getSchemaFiles(s, *cfg)
	if err != nil {
		return err
	}

	log.Debug("resolved schema files", zap.Strings("files", files))

	components, err := schema.ReadComponents(files)
	if err != nil {
		return fmt.Errorf("failed to read schemas: %w", err)
	}

	log.Debug("read components", zap.Int("count", len(components)))

	if err := gen.GenerateManifest(*cfg, s.WorkingDir, components); err != nil {
		return err
	}

	log.Info("wrote fragment manifest",
		zap.String("path", filepath.Join(s.WorkingDir, cfg.Output.Path)),
		zap.Int("components", len(components)),
	)

	return nil
}

// getSchemaFiles resolves the schema globs of `cfg`. Each file is returned
// once, in the order of the first glob that matched it.
func getSchemaFiles(s Settings, cfg config.Config) ([]string, error) {
	paths := make([]string, 0)

	for _, c := range cfg.Schemas {
		path := filepath.Join(s.WorkingDir, c.Path)

		files, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve schema files using glob "%s": %w`, c.Path, err)
		}

		for _, f := range files {
			if !slices.Contains(paths, f) {
				paths = append(paths, f)
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files matched the configured paths")
	}

	return paths, nil
}
