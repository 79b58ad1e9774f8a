// Package topic provides the fully-qualified stream coordinate used to
// address a topic on a specific gateway endpoint.
package topic

import (
	"fmt"
	"strings"

	"github.com/trisberg/streaming-processor/errors"
)

// Address identifies one topic on one gateway endpoint. It is a comparable
// value type: two addresses parsed from the same string are equal and can be
// used interchangeably as map keys.
type Address struct {
	// Gateway is the host:port of the gateway serving the topic.
	Gateway string
	// Topic is the topic name within that gateway.
	Topic string
}

// String returns the canonical gateway/topic form the address was parsed from.
func (a Address) String() string {
	return a.Gateway + "/" + a.Topic
}

// Parse parses a single "gateway:port/topic" coordinate. The separator is the
// first slash; both parts must be non-empty.
func Parse(s string) (Address, error) {
	idx := strings.Index(s, "/")
	if idx < 0 {
		return Address{}, errors.WrapInvalid(
			fmt.Errorf("%w: %q has no '/' separator", errors.ErrMalformedAddress, s),
			"topic", "Parse", "address parsing")
	}

	gateway, name := s[:idx], s[idx+1:]
	if gateway == "" || name == "" {
		return Address{}, errors.WrapInvalid(
			fmt.Errorf("%w: %q has an empty gateway or topic part", errors.ErrMalformedAddress, s),
			"topic", "Parse", "address parsing")
	}

	return Address{Gateway: gateway, Topic: name}, nil
}

// ParseList parses a comma-separated list of coordinates, preserving order.
// Duplicates are allowed: two inputs may legitimately point at the same
// gateway and topic.
func ParseList(s string) ([]Address, error) {
	parts := strings.Split(s, ",")
	addresses := make([]Address, 0, len(parts))
	for _, part := range parts {
		addr, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// Gateways returns the distinct gateway endpoints referenced by the given
// addresses, in first-seen order.
func Gateways(lists ...[]Address) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, addr := range list {
			if _, ok := seen[addr.Gateway]; ok {
				continue
			}
			seen[addr.Gateway] = struct{}{}
			out = append(out, addr.Gateway)
		}
	}
	return out
}
