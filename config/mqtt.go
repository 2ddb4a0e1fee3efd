package config

import (
	"crypto/tls"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/unitconv/log"
)

// MQTTConfig is the configuration for the MQTT client used by the
// conversion bridge.
//
// See [mqtt.ClientOptions]
type MQTTConfig struct {
	// Broker is the URI of the broker. The format should be scheme://host:port
	// where "scheme" is one of "tcp", "ssl", or "ws", "host" is the ip-address
	// (or hostname) and "port" is the port on which the broker is accepting
	// connections.
	Broker string `yaml:"broker"`
	// ClientID is the (optional) client ID used when connecting to the broker.
	ClientID string `yaml:"client_id,omitempty"`
	// Username is the username used when connecting to the broker.
	Username string `yaml:"username"`
	// Password is the password used when connecting to the broker.
	Password string `yaml:"password"`
	// KeepAlive is the duration that the client should wait before pinging the broker.
	KeepAlive time.Duration `yaml:"keep_alive,omitempty"`
	// CertFile is the path to the PEM-encoded TLS certificate. If blank (default) then
	// TLS is not used between the client and the broker.
	CertFile string `yaml:"cert_file,omitempty"`
	// KeyFile is the path to the PEM-encoded TLS private key.
	KeyFile string `yaml:"key_file,omitempty"`
	// ReconnectInterval is the maximum duration that the client will wait between reconnection
	// attempts.
	ReconnectInterval time.Duration `yaml:"reconnect_interval,omitempty"`
	// ConnectTimeout is the duration that the client will wait when attempting to open a
	// connection to the broker before timing out. A duration of 0 means the client will
	// never time out.
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`
	// WriteTimeout is the duration that the client will block for when publishing a message
	// before unblocking with a timeout error.
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	// BirthWillEnabled indicates if the Birth and Last Will and Testament messages are enabled.
	BirthWillEnabled bool `yaml:"birth_lwt_enabled"`
	// BirthWillTopic is the topic to publish the Birth and Last Will and Testament messages to
	// if enabled. The default value is "unitconv/bridge/status"
	BirthWillTopic string `yaml:"birth_lwt_topic"`
	// RequestTopic is the topic conversion requests are received on.
	// The default value is "unitconv/convert"
	RequestTopic string `yaml:"request_topic"`
	// ResultTopic is the topic results are published to when a request does
	// not name its own reply topic. The default value is "unitconv/result"
	ResultTopic string `yaml:"result_topic"`
	// QoS is the Quality of Service used for subscriptions and results.
	QoS byte `yaml:"qos,omitempty"`
	// LogLevel is the log level to provide to the backing MQTT client package.
	// See [mqtt.Logger]
	LogLevel log.Level `yaml:"log_level"`

	tlsCert *tls.Certificate
}

var DefaultMQTT = MQTTConfig{
	Broker:           "$UNITCONV_BROKER_ADDRESS",
	Username:         "$UNITCONV_BROKER_USERNAME",
	Password:         "$UNITCONV_BROKER_PASSWORD",
	BirthWillEnabled: true,
	BirthWillTopic:   "~/bridge/status",
	RequestTopic:     "~/convert",
	ResultTopic:      "~/result",
	LogLevel:         log.LevelDisabled,
}

// ClientOptions returns cfg formatted as [mqtt.ClientOptions] to provide to
// the backing MQTT client when calling [mqtt.NewClient].
func (cfg *MQTTConfig) ClientOptions() *mqtt.ClientOptions {
	o := mqtt.NewClientOptions()
	o.AddBroker(cfg.Broker)
	o.SetClientID(cfg.ClientID)
	o.SetUsername(cfg.Username).SetPassword(cfg.Password)
	o.SetResumeSubs(true)

	if cfg.KeepAlive > 0 {
		o.SetKeepAlive(cfg.KeepAlive)
	}

	if cfg.ReconnectInterval > 0 {
		o.SetMaxReconnectInterval(cfg.ReconnectInterval)
	}

	if cfg.ConnectTimeout > 0 {
		o.SetConnectTimeout(cfg.ConnectTimeout)
	}

	if cfg.WriteTimeout > 0 {
		o.SetWriteTimeout(cfg.WriteTimeout)
	}

	if cfg.BirthWillEnabled {
		o.SetWill(cfg.BirthWillTopic, "offline", 1, true)
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		o.SetTLSConfig(&tls.Config{
			GetClientCertificate: cfg.getCertificate,
		})
	}

	return o
}

func (cfg *MQTTConfig) getCertificate(_ *tls.CertificateRequestInfo) (*tls.Certificate, error) {
	if cfg.tlsCert == nil {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}

		cfg.tlsCert = &cert
	}

	return cfg.tlsCert, nil
}

// IsZero indicates whether cfg is the default value.
func (cfg MQTTConfig) IsZero() bool {
	return cfg == DefaultMQTT
}
