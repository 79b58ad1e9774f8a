// Package config loads the processor's environment-derived configuration:
// the ordered input and output stream coordinates, the function endpoint,
// the consumer group, and the argument/result bindings declared to the
// function. Every count invariant is checked here, before any gateway or
// function connection is attempted.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/topic"
)

// Environment variable keys. The names are part of the deployment contract
// and match what the invoker tooling injects into the sidecar container.
const (
	// EnvInputs holds the input stream coordinates as a comma separated
	// list of gatewayAddress:port/streamName entries.
	EnvInputs = "INPUTS"
	// EnvOutputs holds the output stream coordinates in the same form.
	EnvOutputs = "OUTPUTS"
	// EnvFunction holds the function RPC address as host:port.
	EnvFunction = "FUNCTION"
	// EnvGroup holds the consumer group this process subscribes under.
	EnvGroup = "GROUP"
	// EnvInputNames holds the logical input parameter names, comma separated.
	EnvInputNames = "INPUT_NAMES"
	// EnvOutputNames holds the logical output result names, comma separated.
	EnvOutputNames = "OUTPUT_NAMES"
	// EnvOutputContentTypes holds a JSON array of content types expected on
	// the output streams.
	EnvOutputContentTypes = "OUTPUT_CONTENT_TYPES"
	// EnvWindow optionally overrides the invocation window duration.
	EnvWindow = "WINDOW"
	// EnvWindowBuffer optionally overrides the per-window frame buffer.
	EnvWindowBuffer = "WINDOW_BUFFER"
	// EnvMetricsAddr optionally enables the metrics HTTP listener.
	EnvMetricsAddr = "METRICS_ADDR"
)

// DefaultWindow is the invocation window duration used when EnvWindow is not
// set.
const DefaultWindow = 60 * time.Second

// DefaultWindowBuffer is the per-window frame buffer capacity used when
// EnvWindowBuffer is not set. A full buffer back-pressures the input
// subscribers.
const DefaultWindowBuffer = 1024

// Config is the validated processor configuration.
type Config struct {
	// Inputs are the ordered input stream coordinates; position is the
	// argument index used on the invocation channel.
	Inputs []topic.Address
	// Outputs are the ordered output stream coordinates; position is the
	// result index embedded in output frames.
	Outputs []topic.Address
	// InputNames are the logical input parameter names, parallel to Inputs.
	InputNames []string
	// OutputNames are the logical result names, parallel to Outputs.
	OutputNames []string
	// OutputContentTypes are the content types expected on the output
	// streams, parallel to Outputs.
	OutputContentTypes []string
	// Function is the host:port of the function RPC endpoint.
	Function string
	// Group is the consumer group identifier.
	Group string
	// Window is the invocation window duration.
	Window time.Duration
	// WindowBuffer is the per-window frame buffer capacity.
	WindowBuffer int
	// MetricsAddr is the listen address for the metrics endpoint; empty
	// disables the listener.
	MetricsAddr string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(EnvWindow, DefaultWindow.String())
	v.SetDefault(EnvWindowBuffer, DefaultWindowBuffer)

	for _, key := range []string{
		EnvInputs, EnvOutputs, EnvFunction, EnvGroup,
		EnvInputNames, EnvOutputNames, EnvOutputContentTypes,
	} {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, errors.WrapFatal(
				fmt.Errorf("%w: %s", errors.ErrMissingConfig, key),
				"config", "Load", "environment check")
		}
	}

	inputs, err := topic.ParseList(v.GetString(EnvInputs))
	if err != nil {
		return nil, errors.WrapFatal(err, "config", "Load", EnvInputs+" parsing")
	}
	outputs, err := topic.ParseList(v.GetString(EnvOutputs))
	if err != nil {
		return nil, errors.WrapFatal(err, "config", "Load", EnvOutputs+" parsing")
	}

	inputNames := splitCSV(v.GetString(EnvInputNames))
	outputNames := splitCSV(v.GetString(EnvOutputNames))

	contentTypes, err := parseContentTypes(v.GetString(EnvOutputContentTypes))
	if err != nil {
		return nil, err
	}

	window := v.GetDuration(EnvWindow)
	if window <= 0 {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %s must be a positive duration", errors.ErrInvalidConfig, EnvWindow),
			"config", "Load", "window parsing")
	}

	windowBuffer := v.GetInt(EnvWindowBuffer)
	if windowBuffer <= 0 {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %s must be positive", errors.ErrInvalidConfig, EnvWindowBuffer),
			"config", "Load", "window buffer parsing")
	}

	cfg := &Config{
		Inputs:             inputs,
		Outputs:            outputs,
		InputNames:         inputNames,
		OutputNames:        outputNames,
		OutputContentTypes: contentTypes,
		Function:           v.GetString(EnvFunction),
		Group:              v.GetString(EnvGroup),
		Window:             window,
		WindowBuffer:       windowBuffer,
		MetricsAddr:        v.GetString(EnvMetricsAddr),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the binding invariants: the name list for each side must
// be parallel to its address list, and the content type list parallel to the
// outputs. A violation is fatal and must be reported before the pipeline is
// constructed.
func (c *Config) Validate() error {
	if len(c.InputNames) != len(c.Inputs) {
		return errors.WrapFatal(
			fmt.Errorf("%w: expected %d input name(s), got %d",
				errors.ErrInvalidConfig, len(c.Inputs), len(c.InputNames)),
			"config", "Validate", "input name count check")
	}
	if len(c.OutputNames) != len(c.Outputs) {
		return errors.WrapFatal(
			fmt.Errorf("%w: expected %d output name(s), got %d",
				errors.ErrInvalidConfig, len(c.Outputs), len(c.OutputNames)),
			"config", "Validate", "output name count check")
	}
	if len(c.OutputContentTypes) != len(c.Outputs) {
		return errors.WrapFatal(
			fmt.Errorf("%w: expected %d output stream content type(s), got %d",
				errors.ErrInvalidConfig, len(c.Outputs), len(c.OutputContentTypes)),
			"config", "Validate", "content type count check")
	}
	if c.Function == "" {
		return errors.WrapFatal(
			fmt.Errorf("%w: function address", errors.ErrMissingConfig),
			"config", "Validate", "function address check")
	}
	if c.Group == "" {
		return errors.WrapFatal(
			fmt.Errorf("%w: consumer group", errors.ErrMissingConfig),
			"config", "Validate", "consumer group check")
	}
	return nil
}

// Gateways returns the distinct gateway endpoints referenced by the inputs
// and outputs, in first-seen order.
func (c *Config) Gateways() []string {
	return topic.Gateways(c.Inputs, c.Outputs)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func parseContentTypes(raw string) ([]string, error) {
	var contentTypes []string
	if err := json.Unmarshal([]byte(raw), &contentTypes); err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %s is not a JSON string array: %v",
				errors.ErrInvalidConfig, EnvOutputContentTypes, err),
			"config", "parseContentTypes", "content type parsing")
	}
	return contentTypes, nil
}
