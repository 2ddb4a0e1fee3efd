package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/internal/build"
	"github.com/lone-faerie/unitconv/internal/cleanup"
	"github.com/lone-faerie/unitconv/log"
)

// Flags shared between commands
var (
	ConfigPath []string      // Path(s) to config file/directory (default is first of $UNITCONV_CONFIG_PATH, $XDG_CONFIG_HOME/unitconv.yaml, $HOME/.config/unitconv.yaml)
	Precision  int           // Digits after the decimal point
	Format     config.Format // Output format
	LogLevel   log.LevelFlag // Log level
	Broker     string        // MQTT broker address
	Port       int           // MQTT broker port
	Username   string        // MQTT broker username
	Password   string        // MQTT broker password
	CertFile   string        // MQTT TLS certificate file (PEM encoded)
	KeyFile    string        // MQTT TLS private key file (PEM encoded)
)

var cfg *config.Config

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/unitconv`

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func findConfig() {
	const defaultConfigFile = "unitconv.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("UNITCONV_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

func addConfigFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	LogLevel = log.LevelFlag(log.LevelWarn)
	fs.VarP(&LogLevel, "log", "l", "Log level")

	cmd.MarkFlagFilename("config", "yaml", "yml")
	cmd.MarkFlagDirname("config")
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&Precision, "precision", "p", -1, "Digits after the decimal point, or -1 for the shortest exact value")
	Format = config.FormatPlain
	fs.VarP(&Format, "output", "o", "Output format (plain, json, yaml)")
}

func addBrokerFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&Broker, "broker", "b", "", "MQTT broker address")
	fs.IntVarP(&Port, "port", "P", 1883, "MQTT broker port")
	fs.StringVar(&Username, "username", "", "MQTT client username")
	fs.StringVar(&Password, "password", "", "MQTT client password")
	fs.StringVar(&CertFile, "cert", "", "MQTT TLS certificate file (PEM encoded)")
	fs.StringVar(&KeyFile, "key", "", "MQTT TLS private key file (PEM encoded)")
}

// loadConfig loads the config for cmd and applies its flags. Messages below
// minLevel are not logged.
func loadConfig(cmd *cobra.Command, minLevel log.Level) (err error) {
	log.SetLogLevel(minLevel)
	findConfig()

	cfg, err = config.Load(ConfigPath...)
	if err != nil {
		return &ExitError{err, 1}
	}

	flagsToConfig(cmd, cfg)
	setLogHandler(cfg, minLevel)
	log.Debug("Config loaded", "path", ConfigPath)

	return nil
}

func maybeWithPort(addr string, port int) string {
	var hasPort bool

	if last := addr[len(addr)-1]; '0' <= last && last <= '9' {
		for _, c := range addr {
			switch {
			case c == ':':
				hasPort = true
			case '0' <= c && c <= '9':
			default:
				hasPort = false
			}
		}
	}

	if hasPort || port < 0 {
		return addr
	}

	return addr + ":" + strconv.Itoa(port)
}

func flagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()

	if fs.Changed("log") {
		cfg.Log.Level = log.Level(LogLevel)
	}

	if fs.Changed("precision") {
		cfg.Precision = Precision
	}

	if fs.Changed("output") {
		cfg.Format = Format
	}

	if Broker != "" {
		cfg.MQTT.Broker = maybeWithPort(Broker, Port)
	}

	if Username != "" {
		cfg.MQTT.Username = Username
	}

	if Password != "" {
		cfg.MQTT.Password = Password
	}

	if CertFile != "" {
		cfg.MQTT.CertFile = CertFile
	}

	if KeyFile != "" {
		cfg.MQTT.KeyFile = KeyFile
	}
}

func setLogHandler(cfg *config.Config, minLevel log.Level) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0640)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)

			break
		}

		w = f

		cleanup.Register(func() { f.Close() })
	}

	if cfg.Log.Level < minLevel {
		cfg.Log.Level = minLevel
	}

	log.SetLogLevel(cfg.Log.Level)

	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}

// encode writes v to w in the given format. Plain output must be handled
// by the caller.
func encode(w io.Writer, f config.Format, v any) error {
	switch f {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New("unsupported format " + f.String())
}

const banner = `┌────────────────────────────────────────┐
│                                        │
│   unitconv bridge                      │
│                                        │
│     Version: {{printf "%%-24.24s" .Version}}  │
│     Build Time: %-21.21s  │
│                                        │
└────────────────────────────────────────┘
`

// BannerTemplate returns the string used for templating the banner.
func BannerTemplate() string {
	return fmt.Sprintf(banner, build.BuildTime())
}

// PrintBanner prints the banner to the given commands error output.
func PrintBanner(cmd *cobra.Command) error {
	t := template.New("banner")

	template.Must(t.Parse(BannerTemplate()))

	return t.Execute(cmd.ErrOrStderr(), cmd.Root())
}
