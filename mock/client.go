// Package mock provides an in-memory [mqtt.Client] for testing.
package mock

import (
	"encoding/json"
	"io"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/unitconv/log"
)

// Message is a message published through a [Client].
type Message struct {
	Topic    string
	QoS      byte
	Retained bool
	Payload  []byte
}

// Client records published messages and delivers messages to subscribers
// only when [Client.Deliver] is called. It never touches the network.
type Client struct {
	connected bool

	onConnect mqtt.OnConnectHandler
	opts      *mqtt.ClientOptions
	handlers  map[string]mqtt.MessageHandler
	published []Message
	w         io.Writer
	mu        sync.Mutex
}

// NewClient returns a Client with the given options. If w is not nil,
// every published message is also written to w as indented JSON.
func NewClient(o *mqtt.ClientOptions, w io.Writer) *Client {
	if o == nil {
		o = mqtt.NewClientOptions()
	}
	return &Client{
		onConnect: o.OnConnect,
		opts:      o,
		handlers:  make(map[string]mqtt.MessageHandler),
		w:         w,
	}
}

func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) IsConnectionOpen() bool {
	return c.IsConnected()
}

func (c *Client) Connect() mqtt.Token {
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	if c.onConnect != nil {
		c.onConnect(c)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Disconnect(_ uint) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

func (c *Client) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	var p []byte
	switch v := payload.(type) {
	case []byte:
		p = v
	case string:
		p = []byte(v)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, Message{topic, qos, retained, p})
	if c.w == nil {
		return &mqtt.DummyToken{}
	}
	raw := json.RawMessage(p)
	if !json.Valid(p) {
		raw, _ = json.Marshal(string(p))
	}
	e := json.NewEncoder(c.w)
	e.SetIndent("", "  ")
	if err := e.Encode(map[string]json.RawMessage{topic: raw}); err != nil {
		log.Error("Error encoding "+topic, err)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = callback
	return &mqtt.DummyToken{}
}

func (c *Client) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	for topic := range filters {
		c.handlers[topic] = callback
	}
	return &mqtt.DummyToken{}
}

func (c *Client) Unsubscribe(topics ...string) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, topic := range topics {
		delete(c.handlers, topic)
	}
	return &mqtt.DummyToken{}
}

func (c *Client) AddRoute(topic string, callback mqtt.MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = callback
}

func (c *Client) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.NewOptionsReader(c.opts)
}

// Subscribed reports whether there is a handler for topic.
func (c *Client) Subscribed(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handlers[topic]
	return ok
}

// Deliver calls the handler subscribed to topic with payload, reporting
// whether there was one.
func (c *Client) Deliver(topic string, payload []byte) bool {
	c.mu.Lock()
	h, ok := c.handlers[topic]
	c.mu.Unlock()
	if !ok {
		return false
	}
	h(c, &message{topic: topic, payload: payload})
	return true
}

// Published returns the messages published to topic in order. If topic is
// empty, every published message is returned.
func (c *Client) Published(topic string) []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var mm []Message
	for _, m := range c.published {
		if topic == "" || m.Topic == topic {
			mm = append(mm, m)
		}
	}
	return mm
}

type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 0 }
func (m *message) Retained() bool    { return false }
func (m *message) MessageID() uint16 { return 0 }
func (m *message) Ack()              {}

func (m *message) Topic() string {
	return m.topic
}

func (m *message) Payload() []byte {
	return m.payload
}
