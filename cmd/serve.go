package cmd

import (
	"context"
	_ "embed"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lone-faerie/unitconv/bridge"
	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/log"
)

// Flags for unitconv serve
var (
	NoWatch bool // Don't reload the config when it changes
)

var errStopped = errors.New("bridge stopped")

//go:embed help/serve.md
var serveHelp string

// NewCmdServe returns the [cobra.Command] used for running the conversion bridge.
//
// Usage:
//
//	unitconv serve [--config <path>]... [flags]
//
// Aliases:
//
//	serve, run, start
//
// Flags:
//
//	-c, --config strings    Path(s) to config file/directory
//	-b, --broker string     MQTT broker address
//	-P, --port int          MQTT broker port (default 1883)
//	    --username string   MQTT client username
//	    --password string   MQTT client password
//	    --cert string       MQTT TLS certificate file (PEM encoded)
//	    --key string        MQTT TLS private key file (PEM encoded)
//	-p, --precision int     Digits after the decimal point, or -1 for the shortest exact value (default -1)
//	-l, --log level         Log level (default WARN)
//	    --no-watch          Don't reload the config when it changes
//	-h, --help              help for serve
func NewCmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve [--config <path>]... [flags]",
		Aliases: []string{"run", "start"},
		Short:   "Run the conversion bridge",
		Long:    serveHelp,
		Example: `  unitconv serve --config config.yaml
  unitconv serve --broker 127.0.0.1:1883 --username unitconv --password p@55w0rd`,
		GroupID: "bridge",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := PrintBanner(cmd); err != nil {
				cmd.PrintErrln(err)
			}
			if err := loadConfig(cmd, log.LevelInfo); err != nil {
				return err
			}
			log.Debug("MQTT broker", "addr", cfg.MQTT.Broker)
			return nil
		},
		RunE: runServe,

		DisableFlagsInUseLine: true,
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	addConfigFlags(cmd)
	addBrokerFlags(fs)
	fs.IntVarP(&Precision, "precision", "p", -1, "Digits after the decimal point, or -1 for the shortest exact value")
	fs.BoolVar(&NoWatch, "no-watch", false, "Don't reload the config when it changes")

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := bridge.New(cfg)
	if err := b.Connect(ctx); err != nil {
		log.Error("Not connected.", err)
		return &ExitError{err, 1}
	}
	defer func() {
		b.Disconnect()
		log.Info("Done")
	}()

	if err := b.Start(ctx); err != nil {
		return &ExitError{err, 1}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-b.Done():
			return errStopped
		case <-ctx.Done():
			log.Debug("Received signal")
			return nil
		}
	})
	if !NoWatch {
		g.Go(func() error {
			return watchConfig(ctx, cmd, b)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errStopped) {
		return &ExitError{err, 1}
	}
	return nil
}

// watchConfig applies the precision and log level of reloaded configs to b,
// unless they were given as flags.
func watchConfig(ctx context.Context, cmd *cobra.Command, b *bridge.Bridge) error {
	var path []string
	for _, p := range ConfigPath {
		if _, err := os.Stat(p); err == nil {
			path = append(path, p)
		}
	}
	if len(path) == 0 {
		return nil
	}

	fs := cmd.Flags()
	err := config.Watch(ctx, func(c *config.Config) {
		if !fs.Changed("precision") {
			b.SetPrecision(c.Precision)
			log.Info("Precision set", "precision", c.Precision)
		}
		if !fs.Changed("log") {
			level := c.Log.Level
			if level < log.LevelInfo {
				level = log.LevelInfo
			}
			log.SetLogLevel(level)
		}
	}, path...)
	if err != nil {
		log.Warn("Unable to watch config", "cause", err)
	}
	return nil
}
