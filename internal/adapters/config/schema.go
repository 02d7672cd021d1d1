package config

// Warmfile represents the structure of the warm.yaml configuration file.
type Warmfile struct {
	Version  string `yaml:"version" validate:"omitempty,oneof=1"`
	CacheDir string `yaml:"cacheDir"`
	// ValidateOnEveryAccess defaults to true when omitted.
	ValidateOnEveryAccess *bool                  `yaml:"validateOnEveryAccess"`
	Parallelism           *int                   `yaml:"parallelism" validate:"omitempty,min=1,max=256"`
	Artifacts             map[string]ArtifactDTO `yaml:"artifacts" validate:"required,min=1,dive"`
}

// ArtifactDTO represents an artifact definition in the configuration.
type ArtifactDTO struct {
	Sources     []string `yaml:"sources" validate:"dive,required"`
	Globs       []string `yaml:"globs" validate:"dive,required"`
	Directories []string `yaml:"directories" validate:"dive,required"`
	Optional    []string `yaml:"optional" validate:"dive,required"`
	Env         []string `yaml:"env" validate:"dive,required,envvar"`
}
