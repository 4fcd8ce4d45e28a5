package config

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Render  RenderConfig  `yaml:"render"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// CatalogConfig points at the file the term catalog is imported from.
// The format is picked from the extension: .json, .yaml or .yml.
type CatalogConfig struct {
	Path string `yaml:"path" env:"CATALOG_PATH" env-default:"./terms.json"`
}

// RenderConfig holds settings for rendering whole catalogs.
type RenderConfig struct {
	// Workers bounds how many definitions are linked concurrently.
	Workers int `yaml:"workers" env:"RENDER_WORKERS" env-default:"4"`
}
