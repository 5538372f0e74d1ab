// Package config loads application configuration from a YAML file, a .env
// file and the environment.
//
// Files are searched in standard locations unless given explicitly.
// Environment variables carrying the application prefix override file
// values; nested keys are matched by treating underscores as either word
// or level separators:
//
//	RESTCALL_REST_BASE_URL=https://jira.example.com/   ->  rest.base_url
//	RESTCALL_LOGGING_LEVEL=debug                      ->  logging.level
//
// Usage:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    REST rest.Config     `yaml:"rest" mapstructure:"rest"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("restcall", &cfg, config.WithConfigFile(path))
package config
