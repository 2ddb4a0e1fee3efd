package config

import "github.com/lone-faerie/unitconv/log"

// LogConfig is the configuration of the default logger.
type LogConfig struct {
	Level log.Level `yaml:"level"`
	// Output is one of "stderr" (default), "stdout", "discard" or a file path.
	Output string `yaml:"output"`
	// Format is one of "text" (default) or "json".
	Format string `yaml:"format"`
}

var DefaultLog = LogConfig{
	Level:  log.LevelInfo,
	Output: "stderr",
	Format: "text",
}
