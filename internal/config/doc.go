// Package config loads generator settings from flags, LEXMAP_* environment
// variables and an optional .env file, in that order of precedence.
package config
