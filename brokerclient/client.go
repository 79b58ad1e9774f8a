// Package brokerclient manages gRPC client connections to gateway endpoints.
// One client is held per distinct endpoint and shared by every input and
// output that resolves to it.
package brokerclient

import (
	"fmt"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
)

// Client wraps a single plaintext gRPC channel to one gateway endpoint and
// exposes the gateway service stub bound to it.
type Client struct {
	target string
	conn   *grpc.ClientConn
	svc    liiklus.LiiklusServiceClient
	logger *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*clientOptions)

type clientOptions struct {
	logger      *slog.Logger
	dialOptions []grpc.DialOption
}

// WithLogger sets the structured logger used by the client
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithDialOptions appends extra gRPC dial options (used by tests to swap
// transports)
func WithDialOptions(opts ...grpc.DialOption) ClientOption {
	return func(o *clientOptions) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

// NewClient opens a channel to the given gateway endpoint. Channels are
// plaintext and unauthenticated; gateway endpoints are assumed reachable by
// the time the processor starts (bootstrap probes the function endpoint
// only).
func NewClient(target string, opts ...ClientOption) (*Client, error) {
	options := clientOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, options.dialOptions...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, errors.WrapTransient(err, "brokerclient", "NewClient",
			fmt.Sprintf("dial %s", target))
	}

	// Kick the channel out of idle so the connection is established eagerly.
	conn.Connect()

	return &Client{
		target: target,
		conn:   conn,
		svc:    liiklus.NewLiiklusServiceClient(conn),
		logger: options.logger.With("gateway", target),
	}, nil
}

// Target returns the endpoint this client is connected to
func (c *Client) Target() string {
	return c.target
}

// Service returns the gateway service stub bound to this client's channel
func (c *Client) Service() liiklus.LiiklusServiceClient {
	return c.svc
}

// Close tears down the underlying channel
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if err := c.conn.Close(); err != nil {
		return errors.WrapTransient(err, "brokerclient", "Close", "channel close")
	}
	c.logger.Debug("gateway channel closed")
	return nil
}
