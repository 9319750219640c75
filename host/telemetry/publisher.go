// Package telemetry publishes odometry read-outs to an MQTT broker so
// off-robot tooling can watch the wheels without touching the bus.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// Config selects the broker and topic.
type Config struct {
	BrokerURL string
	ClientID  string
	Topic     string
}

// DefaultTopic is used when the config leaves the topic empty.
const DefaultTopic = "triangula/odometry"

// Sample is one published odometry observation.
type Sample struct {
	Time   time.Time `json:"time"`
	Raw    [3]uint16 `json:"raw"`    // free-running counters A, B, C
	Delta  [3]int16  `json:"delta"`  // ticks since the previous sample
	Travel [3]int64  `json:"travel"` // accumulated signed travel
}

// Publisher holds a connected MQTT client.
type Publisher struct {
	client paho.Client
	topic  string
}

// Connect dials the broker and returns a ready publisher.
func Connect(cfg Config) (*Publisher, error) {
	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "triangula-host"
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true)

	client := paho.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.BrokerURL, err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

// Publish sends one sample as JSON at QoS 0: odometry is periodic, a
// dropped sample is superseded by the next one anyway.
func (p *Publisher) Publish(s Sample) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", p.topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
