package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest records the outbound call as an external segment of
// the transaction in ctx. Without a transaction it just calls do.
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, do func() (*http.Response, error)) (*http.Response, error) {
	txn := FromContext(ctx)
	if txn == nil {
		return do()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := do()
	if err != nil {
		txn.NoticeError(err)
		return resp, err
	}
	segment.Response = resp
	return resp, nil
}
