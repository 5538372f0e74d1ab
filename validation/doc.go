// Package validation checks configuration values.
//
// Struct tag validation uses go-playground/validator with field names taken
// from mapstructure tags, so errors name the keys users write in config files:
//
//	type Config struct {
//	    BaseURL string `mapstructure:"base_url" validate:"required,url"`
//	}
//	err := validation.Struct(cfg)
//
// Programmatic checks collect errors in a Validator:
//
//	err := validation.New().
//	    Required("name", cfg.Name).
//	    OneOf("format", cfg.Format, []string{"json", "console"}).
//	    Err()
package validation
