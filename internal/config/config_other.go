//go:build !unix

package config

import "os"

func targetSpecificInit() {
	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = isTruthyEnvValue(s)
	}

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = isTruthyEnvValue(s)
	}

	SHOULD_COLORIZE = !NO_COLOR && FORCE_COLOR
}
