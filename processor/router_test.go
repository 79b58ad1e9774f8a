package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trisberg/streaming-processor/errors"
	"github.com/trisberg/streaming-processor/message"
	"github.com/trisberg/streaming-processor/rpc/riff"
)

func TestRouter_RoutesByResultIndex(t *testing.T) {
	brokerA := newFakeBroker()
	brokerB := newFakeBroker()
	pool := newGatewayPool(t, map[string]*fakeBroker{
		"gw-a:6565": brokerA,
		"gw-b:6565": brokerB,
	})
	router := NewRouter(testBinding(t), pool, nil, nil)

	err := router.Route(context.Background(), &riff.OutputFrame{
		Payload:     []byte("16"),
		ContentType: "text/plain",
		Headers:     map[string]string{"correlation-id": "c-1"},
		ResultIndex: 0,
	})
	require.NoError(t, err)

	err = router.Route(context.Background(), &riff.OutputFrame{
		Payload:     []byte("sixteen"),
		ContentType: "text/plain",
		ResultIndex: 1,
	})
	require.NoError(t, err)

	_, publishedA, _ := brokerA.snapshot()
	require.Len(t, publishedA, 1)
	assert.Equal(t, "squares", publishedA[0].GetTopic())

	msg, err := message.Decode(publishedA[0].GetValue())
	require.NoError(t, err)
	assert.Equal(t, []byte("16"), msg.GetPayload())
	assert.Equal(t, "text/plain", msg.GetContentType())
	assert.Equal(t, map[string]string{"correlation-id": "c-1"}, msg.GetHeaders())

	_, publishedB, _ := brokerB.snapshot()
	require.Len(t, publishedB, 1)
	assert.Equal(t, "words", publishedB[0].GetTopic())
}

func TestRouter_ResultIndexOutOfRange(t *testing.T) {
	brokerA := newFakeBroker()
	pool := newGatewayPool(t, map[string]*fakeBroker{"gw-a:6565": brokerA, "gw-b:6565": newFakeBroker()})
	router := NewRouter(testBinding(t), pool, nil, nil)

	err := router.Route(context.Background(), &riff.OutputFrame{
		Payload:     []byte("x"),
		ResultIndex: 5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrResultIndexOutOfRange))
	assert.Zero(t, brokerA.publishedCount(), "nothing is published for an unroutable frame")
}
