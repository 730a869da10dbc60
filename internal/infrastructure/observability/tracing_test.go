package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_ShutdownFlushesBufferedSpans(t *testing.T) {
	var posts atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	tp, err := InitTracer("orderpay-test", collector.URL+"/api/traces")
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "create-payment")
	span.End()

	// The batcher holds spans until flushed; Shutdown must deliver them
	// before the process exits.
	require.NoError(t, Shutdown(context.Background(), tp))
	assert.GreaterOrEqual(t, posts.Load(), int32(1), "expected buffered spans to reach the collector on shutdown")
}
