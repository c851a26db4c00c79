package config

// OutputFormat selects how built documents are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatHTML OutputFormat = "html"
)

// Config is the top-level llmprompts configuration, corresponding to
// .llmprompts.yml.
type Config struct {
	Format    OutputFormat `yaml:"format" koanf:"format"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	Manifests []string     `yaml:"manifests" koanf:"manifests"`
}
