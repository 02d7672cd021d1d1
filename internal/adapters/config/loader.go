// Package config provides the configuration loader for warm.
package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	defaultParallelism = 1
	supportedVersion   = "1"
)

var envVarRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs       afero.Fs
	logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys afero.Fs, logger ports.Logger) *Loader {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registering a static tag on a fresh validator cannot fail.
	_ = v.RegisterValidation("envvar", func(fl validator.FieldLevel) bool {
		return envVarRegex.MatchString(fl.Field().String())
	})

	return &Loader{
		fs:       fsys,
		logger:   logger,
		validate: v,
	}
}

// DiscoverRoot walks up from cwd and returns the first directory containing warm.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	for dir := abs; ; {
		if ok, _ := afero.Exists(l.fs, filepath.Join(dir, domain.ConfigFileName)); ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load discovers warm.yaml from cwd and resolves it into a domain.Config.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(root, domain.ConfigFileName)

	var file Warmfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, validationErr(err, configPath)
	}

	return l.resolve(root, configPath, &file)
}

func (l *Loader) resolve(root, configPath string, file *Warmfile) (*domain.Config, error) {
	if file.Version == "" {
		l.logger.Warn(fmt.Sprintf("%s has no version, assuming %q", domain.ConfigFileName, supportedVersion))
	}

	cfg := &domain.Config{
		Root:                  root,
		ConfigPath:            configPath,
		CacheDir:              resolvePath(root, file.CacheDir, domain.DefaultCachePath()),
		ValidateOnEveryAccess: true,
		Parallelism:           defaultParallelism,
	}
	if file.ValidateOnEveryAccess != nil {
		cfg.ValidateOnEveryAccess = *file.ValidateOnEveryAccess
	}
	if file.Parallelism != nil {
		cfg.Parallelism = *file.Parallelism
	}

	for _, name := range slices.Sorted(maps.Keys(file.Artifacts)) {
		key, err := domain.NewCacheKey(name)
		if err != nil {
			return nil, zerr.With(err, "config", configPath)
		}

		dto := file.Artifacts[name]
		if len(dto.Sources)+len(dto.Globs)+len(dto.Directories)+len(dto.Optional) == 0 {
			err := zerr.With(zerr.New("artifact has no inputs"), "key", name)
			return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}

		cfg.Artifacts = append(cfg.Artifacts, domain.ArtifactSpec{
			Key:         key,
			Sources:     l.resolvePaths(root, name, dto.Sources),
			Globs:       l.resolvePaths(root, name, dto.Globs),
			Directories: l.resolvePaths(root, name, dto.Directories),
			Optional:    l.resolvePaths(root, name, dto.Optional),
			Env:         slices.Compact(slices.Sorted(slices.Values(dto.Env))),
		})
	}

	return cfg, nil
}

// resolvePaths makes every entry absolute relative to root, dropping repeats.
func (l *Loader) resolvePaths(root, key string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	out := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs := resolvePath(root, p, "")
		if _, ok := seen[abs]; ok {
			l.logger.Warn(fmt.Sprintf("artifact %s lists %s more than once", key, p))
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	return out
}

// resolvePath joins a configured path with root. An empty path uses fallback.
func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Warmfile) error {
	data, err := afero.ReadFile(l.fs, configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}

func validationErr(err error, configPath string) error {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		wrapped = zerr.With(wrapped, "field", verrs[0].Namespace())
		wrapped = zerr.With(wrapped, "rule", verrs[0].Tag())
	}
	return wrapped
}
