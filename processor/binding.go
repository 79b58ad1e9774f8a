package processor

import (
	"fmt"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/rpc/riff"
	"github.com/trisberg/streaming-processor/topic"
)

// Binding is the ordered argument/result wiring declared to the function:
// input addresses with their logical parameter names, and output addresses
// with their logical result names and expected content types. Position in
// each list is the argument index (inputs) or result index (outputs) used on
// the invocation channel.
type Binding struct {
	Inputs             []topic.Address
	InputNames         []string
	Outputs            []topic.Address
	OutputNames        []string
	OutputContentTypes []string

	argIndex map[topic.Address]int
}

// NewBinding builds a Binding and verifies the parallel-list invariants.
// When the same address appears more than once among the inputs, the first
// occurrence decides its argument index.
func NewBinding(
	inputs []topic.Address, inputNames []string,
	outputs []topic.Address, outputNames, outputContentTypes []string,
) (*Binding, error) {
	if len(inputNames) != len(inputs) {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %d input name(s) for %d input(s)",
				errors.ErrInvalidConfig, len(inputNames), len(inputs)),
			"processor", "NewBinding", "input binding check")
	}
	if len(outputNames) != len(outputs) || len(outputContentTypes) != len(outputs) {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %d output name(s) and %d content type(s) for %d output(s)",
				errors.ErrInvalidConfig, len(outputNames), len(outputContentTypes), len(outputs)),
			"processor", "NewBinding", "output binding check")
	}

	argIndex := make(map[topic.Address]int, len(inputs))
	for i, addr := range inputs {
		if _, ok := argIndex[addr]; !ok {
			argIndex[addr] = i
		}
	}

	return &Binding{
		Inputs:             inputs,
		InputNames:         inputNames,
		Outputs:            outputs,
		OutputNames:        outputNames,
		OutputContentTypes: outputContentTypes,
		argIndex:           argIndex,
	}, nil
}

// ArgIndex returns the argument index of the given input address.
func (b *Binding) ArgIndex(addr topic.Address) (int, error) {
	idx, ok := b.argIndex[addr]
	if !ok {
		return 0, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrUnknownTopic, addr),
			"processor", "ArgIndex", "input lookup")
	}
	return idx, nil
}

// Output returns the destination address for the given result index.
func (b *Binding) Output(resultIndex int) (topic.Address, error) {
	if resultIndex < 0 || resultIndex >= len(b.Outputs) {
		return topic.Address{}, errors.WrapInvalid(
			fmt.Errorf("%w: %d not in [0, %d)",
				errors.ErrResultIndexOutOfRange, resultIndex, len(b.Outputs)),
			"processor", "Output", "result lookup")
	}
	return b.Outputs[resultIndex], nil
}

// StartFrame builds the handshake frame declaring this binding to the
// function.
func (b *Binding) StartFrame() *riff.StartFrame {
	return &riff.StartFrame{
		ExpectedContentTypes: b.OutputContentTypes,
		InputNames:           b.InputNames,
		OutputNames:          b.OutputNames,
	}
}
