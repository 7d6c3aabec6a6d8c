// Package config loads the pawdeck client configuration from
// ~/.config/pawdeck/config.toml, providing defaults when the file is absent.
package config
