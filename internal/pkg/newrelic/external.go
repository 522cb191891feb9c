package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest records doFunc as an external call of the transaction in ctx
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	txn := FromContext(ctx)
	if txn == nil {
		return doFunc()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := doFunc()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}

// InstrumentPublish records fn as a message-producer segment towards destination
func InstrumentPublish(ctx context.Context, library, destination string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.MessageProducerSegment{
		StartTime:       txn.StartSegmentNow(),
		Library:         library,
		DestinationType: newrelic.MessageTopic,
		DestinationName: destination,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
