package config

// Source selects the items to lay out.
type Source struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// Render controls how the arranged items are written.
type Render struct {
	Format      string `yaml:"format"`
	PrimeCell   string `yaml:"prime_cell"`
	CellPadding int    `yaml:"cell_padding"`
	Page        bool   `yaml:"page"`
	Title       string `yaml:"title"`
	// Templates is an optional directory overriding the embedded page
	// template and frame layout.
	Templates string `yaml:"templates"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Config represents the spiral.yaml file.
type Config struct {
	Source   Source       `yaml:"source"`
	Render   Render       `yaml:"render"`
	Server   ServerConfig `yaml:"server"`
	Output   string       `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

// Output formats.
const (
	FormatHTML  = "html"
	FormatText  = "text"
	FormatFrame = "frame"
)
