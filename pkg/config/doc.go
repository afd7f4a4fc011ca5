// Package config loads env-tagged structs such as session.Config, pg.Config
// and cookie.Config from the process environment.
//
// LoadEnv merges one or more .env files into the environment without
// overriding variables that are already set. Load parses the environment
// into a struct with github.com/caarlos0/env/v11 and caches the result per
// type, so later calls for the same type are served from memory:
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
//		return err
//	}
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A failed Load is not cached and may be retried after the environment is
// fixed. Tests use ResetCache or ForceReloadConfig after changing variables.
//
// Errors: ErrParsingConfig, ErrConfigNotLoaded, ErrLoadingEnvFile and
// ErrNilPointer, all comparable with errors.Is.
package config
