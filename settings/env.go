// SPDX-License-Identifier: MIT

package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by LoadEnv.
const (
	EnvMaxIter   = "CSC_MAX_ITER"
	EnvEps       = "CSC_EPS"
	EnvAlpha     = "CSC_ALPHA"
	EnvVerbose   = "CSC_VERBOSE"
	EnvWarmStart = "CSC_WARM_START"
)

// ErrInvalidValue signals an environment value that does not parse into
// its field's type, or a numeric knob outside its valid range.
var ErrInvalidValue = errors.New("settings: invalid value")

// LoadEnv overlays environment variables onto s.
//
// Implementation:
//   - Stage 1: read each existing dotenv file in files (godotenv.Read); a
//     missing file is skipped and later files override earlier ones. The
//     process environment is not modified.
//   - Stage 2: for each CSC_* key, take the process variable when it is set
//     and non-empty, otherwise the dotenv value; parse it and assign the
//     field. Keys with no value anywhere leave the field unchanged.
//
// Errors:
//   - ErrInvalidValue wrapped with the variable name on parse failure,
//     non-positive MaxIter, negative Eps, or Alpha outside (0, 2).
//   - Errors from godotenv for files that exist but cannot be parsed.
//
// On error s may be partially updated; fields are assigned in the order
// MaxIter, Eps, Alpha, Verbose, WarmStart.
func LoadEnv(s *Settings, files ...string) error {
	fileVals := make(map[string]string)
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		vals, err := godotenv.Read(f)
		if err != nil {
			return fmt.Errorf("settings: read %s: %w", f, err)
		}
		for k, v := range vals {
			fileVals[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		if v, ok := fileVals[key]; ok && v != "" {
			return v, true
		}

		return "", false
	}

	if v, ok := lookup(EnvMaxIter); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return invalid(EnvMaxIter, v)
		}
		s.MaxIter = n
	}
	if v, ok := lookup(EnvEps); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return invalid(EnvEps, v)
		}
		s.Eps = f
	}
	if v, ok := lookup(EnvAlpha); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f >= 2 {
			return invalid(EnvAlpha, v)
		}
		s.Alpha = f
	}
	if v, ok := lookup(EnvVerbose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(EnvVerbose, v)
		}
		s.Verbose = b
	}
	if v, ok := lookup(EnvWarmStart); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid(EnvWarmStart, v)
		}
		s.WarmStart = b
	}

	return nil
}

func invalid(key, v string) error {
	return fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
}
