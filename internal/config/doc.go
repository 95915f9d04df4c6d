// Package config loads the server and seed settings from defaults, an
// optional config file, an optional .env file and FORUM_* environment
// variables, and validates them with struct tags.
package config
