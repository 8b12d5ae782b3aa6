// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration types are declared as plain structs with `env` tags and
// loaded once at process startup:
//
//	type Config struct {
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Loaded values are cached per type, which keeps configuration immutable for
// the lifetime of the process.
package config
