package testconfig

import (
	"os"
	"testing"
)

var (
	// set to true by the PARALLELIZE_SAME_PKG_TESTS environment variable.
	PARALLELIZE_SAME_PKG_TESTS = false
)

func init() {
	if s, ok := os.LookupEnv("PARALLELIZE_SAME_PKG_TESTS"); ok {
		PARALLELIZE_SAME_PKG_TESTS = s != "" && s != "0" && s != "false"
	}
}

func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
