// Package bridge serves unit conversions over MQTT.
//
// Requests are JSON encoded [unitconv.Request] values published to the request
// topic (default "unitconv/convert"). Each is answered with a JSON encoded
// [unitconv.Result] on the request's reply_to topic, or the result topic
// (default "unitconv/result") if none is given. The catalog of quantities
// is published retained to "<prefix>/catalog" when the bridge starts.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/lone-faerie/unitconv"
	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/log"
)

var errInvalidReplyTo = errors.New("reply_to must not contain wildcards")

// Bridge is the mqtt client that answers conversion requests.
type Bridge struct {
	client mqtt.Client

	requestTopic string
	resultTopic  string
	catalogTopic string
	stopTopic    string
	statusTopic  string
	birthWill    bool
	qos          byte
	precision    atomic.Int64

	wg       sync.WaitGroup
	once     sync.Once
	stopOnce sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

// New returns a new Bridge with the given config and options. The config will be used
// to fill in any necessary values not provided by the options. The bridge must have
// [Bridge.Connect] and [Bridge.Start] called on it before it will answer requests.
func New(cfg *config.Config, opts ...Option) *Bridge {
	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = config.DefaultTopicPrefix
	}
	b := &Bridge{
		requestTopic: cfg.MQTT.RequestTopic,
		resultTopic:  cfg.MQTT.ResultTopic,
		catalogTopic: prefix + "/catalog",
		stopTopic:    prefix + "/bridge/stop",
		statusTopic:  cfg.MQTT.BirthWillTopic,
		birthWill:    cfg.MQTT.BirthWillEnabled,
		qos:          cfg.MQTT.QoS,
		done:         make(chan struct{}),
	}
	if b.requestTopic == "" {
		b.requestTopic = prefix + "/convert"
	}
	if b.resultTopic == "" {
		b.resultTopic = prefix + "/result"
	}
	if b.statusTopic == "" {
		b.statusTopic = prefix + "/bridge/status"
	}
	b.SetPrecision(cfg.Precision)

	if cfg.MQTT.LogLevel < log.LevelDisabled {
		WithLogLevel(cfg.MQTT.LogLevel)(b)
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.client == nil {
		b.client = mqtt.NewClient(cfg.MQTT.ClientOptions())
	}

	return b
}

// SetPrecision sets the number of digits after the decimal point that results
// are rounded to. A negative precision disables rounding. It is safe to call
// while the bridge is running.
func (b *Bridge) SetPrecision(prec int) {
	b.precision.Store(int64(prec))
}

func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.Done():
	}
	return t.Error()
}

// Connect will create a connection to the message broker with the provided context.
func (b *Bridge) Connect(ctx context.Context) error {
	t := b.client.Connect()
	return waitToken(ctx, t)
}

// Start publishes the catalog and status, then subscribes to the request and
// stop topics. Calling Start more than once has no effect.
func (b *Bridge) Start(ctx context.Context) (err error) {
	b.once.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		err = b.start(ctx)
	})
	return
}

func (b *Bridge) start(ctx context.Context) error {
	ctx, b.cancel = context.WithCancel(ctx)

	data, err := json.Marshal(unitconv.Catalog())
	if err != nil {
		return err
	}
	if err = waitToken(ctx, b.client.Publish(b.catalogTopic, 1, true, data)); err != nil {
		log.Error("Unable to publish catalog", err)
		return err
	}

	t := b.client.Subscribe(b.requestTopic, b.qos, b.handleRequest)
	if err = waitToken(ctx, t); err != nil {
		log.Error("Unable to subscribe to "+b.requestTopic, err)
		return err
	}

	t = b.client.Subscribe(b.stopTopic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		msg.Ack()
		log.Info("Received stop")
		go b.Disconnect()
	})
	if err = waitToken(ctx, t); err != nil {
		log.Error("Unable to subscribe to stop topic", err)
		return err
	}

	if b.birthWill {
		if err = waitToken(ctx, b.client.Publish(b.statusTopic, 1, true, "online")); err != nil {
			log.Error("Unable to publish birth message", err)
		}
	}
	log.Info("Bridge started", "topic", b.requestTopic)
	return nil
}

func (b *Bridge) handleRequest(_ mqtt.Client, msg mqtt.Message) {
	msg.Ack()

	var req unitconv.Request
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		log.Warn("Invalid request", "topic", msg.Topic(), "cause", err)
		b.publish(b.resultTopic, unitconv.Result{
			Error: err.Error(),
			Code:  unitconv.CodeBadRequest,
		})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	topic := b.resultTopic
	if req.ReplyTo != "" {
		if strings.ContainsAny(req.ReplyTo, "+#") {
			res := unitconv.Result{
				ID:    req.ID,
				Error: errInvalidReplyTo.Error(),
				Code:  unitconv.CodeBadRequest,
			}
			b.publish(b.resultTopic, res)
			return
		}
		topic = req.ReplyTo
	}

	res := req.Do(int(b.precision.Load()))
	if res.Error != "" {
		log.Debug("Conversion failed", "id", req.ID, "code", res.Code, "cause", res.Error)
	} else {
		log.Debug("Converted", "id", req.ID, "quantity", req.Quantity, "from", req.From, "to", req.To)
	}
	b.publish(topic, res)
}

func (b *Bridge) publish(topic string, res unitconv.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		log.Error("Unable to encode result", err, "id", res.ID)
		return
	}
	t := b.client.Publish(topic, b.qos, false, data)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		<-t.Done()
		if err := t.Error(); err != nil {
			log.Warn("Unable to publish result", "topic", topic, "id", res.ID, "cause", err)
		}
	}()
}

// Done returns a channel that is closed when the bridge has disconnected.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

// Disconnect publishes the offline status and ends the connection with
// the broker. It is safe to call more than once.
func (b *Bridge) Disconnect() {
	b.stopOnce.Do(func() {
		defer close(b.done)
		if b.cancel != nil {
			b.cancel()
		}
		if !b.client.IsConnected() {
			return
		}
		if b.birthWill {
			t := b.client.Publish(b.statusTopic, 1, true, "offline")
			if !t.WaitTimeout(time.Second) || t.Error() != nil {
				log.Warn("Unable to publish LWT on graceful disconnect", "cause", t.Error())
			}
		}
		b.client.Unsubscribe(b.requestTopic, b.stopTopic)
		b.wg.Wait()
		b.client.Disconnect(250)
		log.Info("Disconnected")
	})
}
