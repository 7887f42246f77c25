package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cacheops/ecinv/pkg/serializer"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "output file path; a trailing slash means a directory with a timestamped file name (default: stdout)",
	Sources: cli.EnvVars("ECINV_OUTPUT"),
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   fmt.Sprintf("output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
	Sources: cli.EnvVars("ECINV_FORMAT"),
}

// fallback returns the first non-empty value: flag, config file, then
// the built-in default.
func fallback(flagValue, configValue, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}
