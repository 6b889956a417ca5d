// Package config loads and validates the application configuration.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file. The root Config struct aggregates the partial configurations of
// the packages that consume them; struct tags drive both the env key mapping
// (mapstructure) and default values (default).
//
// Required credentials are checked by Validate before any network call:
// a missing variable terminates the process with every missing name listed,
// so a misconfigured deployment is fixed in one round trip.
package config
