// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env; parsed values are cached per type for the process
// lifetime so repeated Load calls are cheap and consistent.
package config
