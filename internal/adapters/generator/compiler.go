// Package generator compiles the artifacts declared in warm.yaml.
//
// Every artifact is the deep merge of its YAML inputs, encoded as canonical
// JSON. Later inputs override earlier ones key by key; lists and scalars are
// replaced as a whole.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/build"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// TypeID identifies the compiler in type resources.
	TypeID = "generator:yaml-merge"

	// formatRevision changes whenever the merge or encoding rules change.
	formatRevision = "1"

	envParam  = "env"
	warmParam = "warm"
)

// Signature returns the current signature of TypeID.
// Artifacts compiled by a different binary version read as stale.
func Signature() string {
	return "r" + formatRevision + "@" + build.Version
}

// Compiler turns artifact specs into generators.
type Compiler struct {
	fs        afero.Fs
	walker    *fs.Walker
	resolver  *fs.Resolver
	lookupEnv func(string) (string, bool)
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLookupEnv replaces os.LookupEnv for env parameters.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(c *Compiler) {
		c.lookupEnv = fn
	}
}

// NewCompiler creates a new Compiler.
func NewCompiler(fsys afero.Fs, walker *fs.Walker, resolver *fs.Resolver, opts ...Option) *Compiler {
	c := &Compiler{
		fs:        fsys,
		walker:    walker,
		resolver:  resolver,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generator returns the generator compiling spec. The config file of cfg is
// recorded as a resource of the artifact.
func (c *Compiler) Generator(cfg *domain.Config, spec domain.ArtifactSpec) ports.Generator {
	return func(ctx context.Context, req ports.GenerateRequest) (domain.Artifact, error) {
		return c.compile(ctx, cfg.ConfigPath, spec, req.Tracker)
	}
}

// compile tracks every input before reading it, so a change racing with the
// read leaves the artifact stale rather than silently fresh.
func (c *Compiler) compile(
	ctx context.Context,
	configPath string,
	spec domain.ArtifactSpec,
	tracker ports.ResourceTracker,
) (domain.Artifact, error) {
	var resources []domain.Resource
	track := func(r domain.Resource, err error) error {
		if err != nil {
			return err
		}
		resources = append(resources, r)
		return nil
	}

	if err := track(tracker.File(configPath)); err != nil {
		return domain.Artifact{}, err
	}
	if err := track(tracker.Type(TypeID)); err != nil {
		return domain.Artifact{}, err
	}

	inputs, err := c.collectInputs(spec, track, tracker)
	if err != nil {
		return domain.Artifact{}, err
	}

	params := map[string]any{}
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return domain.Artifact{}, err
		}
		doc, err := c.readYAML(path)
		if err != nil {
			return domain.Artifact{}, err
		}
		params = deepMerge(params, doc)
	}

	if len(spec.Env) > 0 {
		env := make(map[string]any, len(spec.Env))
		for _, name := range spec.Env {
			resources = append(resources, tracker.Env(name))
			if value, ok := c.lookupEnv(name); ok {
				env[name] = value
			}
		}
		params = deepMerge(params, map[string]any{envParam: env})
	}
	params = deepMerge(params, map[string]any{warmParam: map[string]any{"key": spec.Key.String()}})

	content, err := canonicalJSON(params)
	if err != nil {
		return domain.Artifact{}, zerr.With(err, "key", spec.Key.String())
	}
	return domain.Artifact{Content: content, Resources: resources}, nil
}

// collectInputs records the resources of every input and returns the files
// to merge: sources, then glob matches, then directory files, then the
// optional files that exist.
func (c *Compiler) collectInputs(
	spec domain.ArtifactSpec,
	track func(domain.Resource, error) error,
	tracker ports.ResourceTracker,
) ([]string, error) {
	var inputs []string

	for _, src := range spec.Sources {
		if err := track(tracker.File(src)); err != nil {
			return nil, err
		}
		inputs = append(inputs, src)
	}

	for _, pattern := range spec.Globs {
		if err := track(tracker.Glob(pattern)); err != nil {
			return nil, err
		}
		matches, err := c.resolver.Glob(pattern)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, matches...)
	}

	for _, dir := range spec.Directories {
		if err := track(tracker.Directory(dir)); err != nil {
			return nil, err
		}
		for path, err := range c.walker.WalkFiles(dir, nil) {
			if err != nil {
				return nil, err
			}
			if isYAML(path) {
				inputs = append(inputs, path)
			}
		}
	}

	for _, path := range spec.Optional {
		if err := track(tracker.FileExists(path), nil); err != nil {
			return nil, err
		}
		if ok, _ := afero.Exists(c.fs, path); !ok {
			continue
		}
		if err := track(tracker.File(path)); err != nil {
			return nil, err
		}
		inputs = append(inputs, path)
	}

	return inputs, nil
}

func (c *Compiler) readYAML(path string) (map[string]any, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceParseFailed.Error()), "path", path)
	}

	normalized, _ := normalize(doc).(map[string]any)
	return normalized, nil
}

func isYAML(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// deepMerge merges src into dst. Nested maps merge recursively; any other
// value in src replaces the value in dst.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[k] = deepMerge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[k] = deepMerge(nil, srcMap)
			continue
		}
		dst[k] = v
	}
	return dst
}

// normalize converts mappings with non-string keys into string-keyed maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

// canonicalJSON encodes v with sorted keys, two-space indentation and a
// trailing newline.
func canonicalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(err, "failed to encode artifact")
	}
	return buf.Bytes(), nil
}
