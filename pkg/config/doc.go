// Package config loads the server configuration and imposter
// collection files.
//
// The server configuration comes from a YAML file (via koanf) with
// struct-tag validation. Collection files describe imposters to create
// at startup and accept JSON or YAML, auto-detected by extension.
package config
