// Package config manages gitlingo configuration.
//
// It handles:
//   - The optional .gitlingo.json file in the active path (or an explicit --config file)
//   - GITLINGO_* environment overrides
//   - Defaults for every setting
package config
