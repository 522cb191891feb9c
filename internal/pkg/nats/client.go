package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// DefaultPublishTimeout bounds a publish when PublishOptions.Timeout is zero
const DefaultPublishTimeout = 5 * time.Second

// Client is a NATS connection with a JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// PublishOptions describes one acknowledged publish
type PublishOptions struct {
	Subject string
	Data    []byte
	// MsgID enables JetStream duplicate detection within the stream's window
	MsgID   string
	Headers map[string]string
	Timeout time.Duration
}

// NewClient connects to NATS and opens a JetStream context
func NewClient(url string, opts ...nats.Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("failed to connect to NATS server: empty url")
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// EnsureStream creates the stream or updates it to match cfg
func (c *Client) EnsureStream(ctx context.Context, cfg StreamConfig) error {
	if _, err := c.js.CreateOrUpdateStream(ctx, cfg.JetStream()); err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
	}
	return nil
}

// Publish sends data to subject and waits for the stream acknowledgement
func (c *Client) Publish(ctx context.Context, subject string, data []byte) (*jetstream.PubAck, error) {
	return c.PublishWithOptions(ctx, PublishOptions{Subject: subject, Data: data})
}

// PublishWithOptions sends a message and waits for the stream acknowledgement.
// A subject no stream captures is reported as an error.
func (c *Client) PublishWithOptions(ctx context.Context, opts PublishOptions) (*jetstream.PubAck, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg := nats.NewMsg(opts.Subject)
	msg.Data = opts.Data
	for k, v := range opts.Headers {
		msg.Header.Set(k, v)
	}

	var pubOpts []jetstream.PublishOpt
	if opts.MsgID != "" {
		pubOpts = append(pubOpts, jetstream.WithMsgID(opts.MsgID))
	}

	ack, err := c.js.PublishMsg(ctx, msg, pubOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to publish message to %s: %w", opts.Subject, err)
	}
	return ack, nil
}

// IsConnected reports whether the underlying connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// GetJetStream returns the JetStream context
func (c *Client) GetJetStream() jetstream.JetStream {
	return c.js
}

// Close closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
