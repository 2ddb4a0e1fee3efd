package cmd

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/log"
)

const stopTimeout = 5 * time.Second

// NewCmdStop returns the [cobra.Command] used for stopping a running bridge.
//
// Usage:
//
//	unitconv stop [flags] [topic]
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
//	-l, --log level         Log level (default WARN)
//	-h, --help              help for stop
func NewCmdStop() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop [flags] [topic]",
		Short: "Stop a running bridge",
		Long: `Stop a running bridge by publishing to its stop topic.

The topic defaults to <prefix>/bridge/stop, where the prefix is the topic_prefix of the config.`,
		GroupID: "bridge",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd, log.LevelWarn)
		},
		RunE: runStop,
	}

	cmd.Flags().SortFlags = false
	addConfigFlags(cmd)
	addBrokerFlags(cmd.Flags())

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func stopTopic(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = config.DefaultTopicPrefix
	}
	return prefix + "/bridge/stop"
}

func runStop(_ *cobra.Command, args []string) error {
	// The bridge must keep its client id and will, so this client gets neither.
	cfg.MQTT.ClientID = ""
	cfg.MQTT.BirthWillEnabled = false

	client := mqtt.NewClient(cfg.MQTT.ClientOptions())
	t := client.Connect()
	if !t.WaitTimeout(stopTimeout) {
		return &ExitError{mqtt.ErrNotConnected, 1}
	}
	if err := t.Error(); err != nil {
		return &ExitError{err, 1}
	}
	defer client.Disconnect(500)

	topic := stopTopic(cfg, args)
	log.Debug("Stopping", "topic", topic)

	t = client.Publish(topic, 1, false, []byte{})
	t.WaitTimeout(stopTimeout)
	if err := t.Error(); err != nil {
		return &ExitError{err, 1}
	}
	return nil
}
