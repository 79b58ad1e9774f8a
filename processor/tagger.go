package processor

import (
	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/message"
	"github.com/trisberg/streaming-processor/rpc/liiklus"
	"github.com/trisberg/streaming-processor/rpc/riff"
	"github.com/trisberg/streaming-processor/topic"
)

// Tagger converts raw received records into input frames tagged with the
// argument index of their source topic. It is a pure translation step with
// no side effects.
type Tagger struct {
	binding *Binding
}

// NewTagger creates a tagger over the given binding
func NewTagger(binding *Binding) *Tagger {
	return &Tagger{binding: binding}
}

// Tag decodes the record's value as an at-rest message and stamps the frame
// with the argument index of source. Decoding failures surface as malformed
// message errors; an unlisted source cannot occur with correct wiring and
// surfaces as an unknown topic error.
func (t *Tagger) Tag(record *liiklus.ReceiveReply_Record, source topic.Address) (*riff.InputFrame, error) {
	argIndex, err := t.binding.ArgIndex(source)
	if err != nil {
		return nil, err
	}

	msg, err := message.Decode(record.GetValue())
	if err != nil {
		return nil, errors.Wrap(err, "processor", "Tag", "record decoding")
	}

	return &riff.InputFrame{
		Payload:     msg.GetPayload(),
		ContentType: msg.GetContentType(),
		Headers:     msg.GetHeaders(),
		ArgIndex:    int32(argIndex),
	}, nil
}
