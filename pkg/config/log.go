package config

import (
	"fmt"
	"strings"
)

// LogConfig controls the process-wide structured logger.
// When File is set, log lines are written both to stdout and appended to the file.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	b.WriteString(fmt.Sprintf("  file: %s\n", c.File))
	return b.String()
}

func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level: %s", c.Level)
	}
}
