package brokerclient

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/trisberg/streaming-processor/errors"
)

// Pool holds exactly one Client per distinct gateway endpoint. It is
// constructed once at startup from the set of endpoints referenced by the
// configured inputs and outputs, handed immutably to every component that
// publishes or subscribes, and outlives every invocation session.
type Pool struct {
	clients map[string]*Client
}

// NewPool dials one client per distinct endpoint in gateways. Duplicate
// entries are collapsed. On any dial failure the already-opened clients are
// closed before the error is returned.
func NewPool(gateways []string, opts ...ClientOption) (*Pool, error) {
	clients := make(map[string]*Client, len(gateways))
	for _, gw := range gateways {
		if _, ok := clients[gw]; ok {
			continue
		}
		client, err := NewClient(gw, opts...)
		if err != nil {
			for _, c := range clients {
				_ = c.Close()
			}
			return nil, errors.Wrap(err, "brokerclient", "NewPool", fmt.Sprintf("dial gateway %s", gw))
		}
		clients[gw] = client
	}

	slog.Debug("gateway client pool constructed", "gateways", len(clients))
	return &Pool{clients: clients}, nil
}

// Get returns the shared client for the given endpoint. A miss means the
// configuration and the data model disagree about which gateways exist; that
// cannot happen in correct operation.
func (p *Pool) Get(gateway string) (*Client, error) {
	client, ok := p.clients[gateway]
	if !ok {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrUnknownEndpoint, gateway),
			"brokerclient", "Get", "endpoint lookup")
	}
	return client, nil
}

// Gateways returns the endpoints held by the pool, sorted for stable logs.
func (p *Pool) Gateways() []string {
	out := make([]string, 0, len(p.clients))
	for gw := range p.clients {
		out = append(out, gw)
	}
	sort.Strings(out)
	return out
}

// Close tears down every channel in the pool.
func (p *Pool) Close() error {
	var errs []error
	for _, client := range p.clients {
		if err := client.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
