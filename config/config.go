// Package config provides the structures used for configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/unitconv/config/secrets"
	"github.com/lone-faerie/unitconv/log"
)

// DefaultTopicPrefix is the prefix of every MQTT topic unless configured otherwise.
const DefaultTopicPrefix = "unitconv"

// MaxPrecision is the largest number of digits after the decimal point that
// will be printed.
const MaxPrecision = 17

// Config contains the configuration for output formatting, the MQTT client
// and logging. Config should be created with a call to [Default], [Read], or
// [Load] as environment variables and topics are expanded when loading.
type Config struct {
	// Precision is the number of digits printed after the decimal point.
	// A negative precision prints the fewest digits that represent the
	// value exactly.
	Precision   int        `yaml:"precision"`
	Format      Format     `yaml:"format"`
	TopicPrefix string     `yaml:"topic_prefix"`
	MQTT        MQTTConfig `yaml:"mqtt,omitempty"`
	Log         LogConfig  `yaml:"log,omitempty"`
}

func defaultConfig() *Config {
	return &Config{
		Precision:   -1,
		Format:      FormatPlain,
		TopicPrefix: DefaultTopicPrefix,
		MQTT:        DefaultMQTT,
		Log:         DefaultLog,
	}
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	cfg := defaultConfig()
	cfg.load()
	return cfg
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Read returns the Config parsed from the yaml encoded config from r.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load returns the Config parsed from the given yaml files, where later files
// override the values of earlier ones. If the first file does not exist, the
// default config is returned. If any of the given paths are directories, all
// the yaml files in the directory are read in lexical order.
func Load(file ...string) (*Config, error) {
	if len(file) == 0 {
		return Default(), nil
	}
	log.Info("Loading config", "path", file)
	if _, err := os.Stat(file[0]); err != nil {
		return Default(), nil
	}
	files, err := expandDirs(file)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, name := range files {
		if err := cfg.decodeFile(name); err != nil {
			return nil, err
		}
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) decodeFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := cfg.decode(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func isYAML(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func expandDirs(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && isYAML(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	return files, nil
}

var topicFields = []string{
	"BirthWillTopic", "RequestTopic", "ResultTopic",
}

func (cfg *Config) load() error {
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = DefaultTopicPrefix
	}
	cfg.forValue(reflect.ValueOf(cfg).Elem(), "")
	if cfg.Precision > MaxPrecision {
		return fmt.Errorf("precision %d exceeds maximum of %d", cfg.Precision, MaxPrecision)
	}
	return nil
}

func (cfg *Config) forValue(v reflect.Value, field string) {
	switch v.Kind() {
	case reflect.String:
		s := Expand(v.String())
		if slices.Contains(topicFields, field) {
			s = ReplaceBase(cfg.TopicPrefix, s)
		}
		v.SetString(s)
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			cfg.forValue(v.Field(i), f.Name)
		}
	case reflect.Pointer:
		if !v.IsNil() {
			cfg.forValue(v.Elem(), field)
		}
	}
}

// ReplaceBase replaces a leading "~/" or trailing "/~" of topic with base.
func ReplaceBase(base, topic string) string {
	if s, ok := strings.CutPrefix(topic, "~/"); ok {
		topic = base + "/" + s
	}
	if s, ok := strings.CutSuffix(topic, "/~"); ok {
		topic = s + "/" + base
	}
	return topic
}

// Expand replaces ${var} or $var in s according to the values of
// the current environment variables, and replaces !secret var according
// to the file at /run/secrets/<var>.
func Expand(s string) string {
	if secret, ok := secrets.CutPrefix(s); ok {
		return secrets.MustRead(secret, "")
	}
	return os.ExpandEnv(s)
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}
