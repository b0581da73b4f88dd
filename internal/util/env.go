package util

import "os"

// Getenv will return an environment variable or a default value
func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}

// SetEnv sets an environment variable and returns a function that restores the previous value
func SetEnv(key, val string) func() {
	orig, found := os.LookupEnv(key)
	_ = os.Setenv(key, val)

	return restore(key, orig, found)
}

// UnsetEnv unsets an environment variable and returns a function that restores the previous value
func UnsetEnv(key string) func() {
	orig, found := os.LookupEnv(key)
	_ = os.Unsetenv(key)

	return restore(key, orig, found)
}

func restore(key, orig string, found bool) func() {
	return func() {
		if found {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
