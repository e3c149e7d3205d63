package env

import "os"

// Get reads an environment variable, falling back when it is unset or
// blank. An exported-but-empty variable counts as unset; callers always
// want a usable value.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
