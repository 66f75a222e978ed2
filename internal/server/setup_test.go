package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/embedding-proxy/internal/logger"
	"github.com/Aleph-Alpha/embedding-proxy/internal/metrics"
	"github.com/Aleph-Alpha/embedding-proxy/internal/tracer"
)

// fakeSubmitter answers from a fixed table.
type fakeSubmitter struct {
	answers map[string][]float64
	err     error

	lastInput string
}

func (f *fakeSubmitter) Submit(ctx context.Context, input string) ([]float64, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.answers[input], nil
}

func newTestServer(t *testing.T, submitter Submitter) *httptest.Server {
	t.Helper()

	log := &logger.Logger{Zap: zap.NewNop()}
	m := metrics.NewMetrics(metrics.Config{
		Address:     ":0",
		ServiceName: "test",
	})
	trc := tracer.NewClient(tracer.Config{ServiceName: "test"}, log)

	s := NewServer(NewConfig(), submitter, log, m, trc)
	srv := httptest.NewServer(s.HTTP.Handler)
	t.Cleanup(srv.Close)
	return srv
}

func postEmbed(t *testing.T, url string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/embed", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestEmbedSuccess(t *testing.T) {
	submitter := &fakeSubmitter{
		answers: map[string][]float64{"Hello world": {0.0123, -0.0456, 0.0789}},
	}
	srv := newTestServer(t, submitter)

	resp := postEmbed(t, srv.URL, []byte(`{"inputs":"Hello world"}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body EmbedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []float64{0.0123, -0.0456, 0.0789}, body.Embedding)
	assert.Equal(t, "Hello world", submitter.lastInput)
}

func TestEmbedUpstreamFailure(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("upstream: http 503")}
	srv := newTestServer(t, submitter)

	resp := postEmbed(t, srv.URL, []byte(`{"inputs":"Hello"}`))
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Error, "http 503")
}

func TestEmbedRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t, &fakeSubmitter{})

	resp := postEmbed(t, srv.URL, []byte(`{"inputs":`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmbedRejectsEmptyInputs(t *testing.T) {
	submitter := &fakeSubmitter{}
	srv := newTestServer(t, submitter)

	resp := postEmbed(t, srv.URL, []byte(`{"inputs":""}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	// Validation failures must never create a job.
	assert.Empty(t, submitter.lastInput)
}

func TestEmbedRejectsNonPost(t *testing.T) {
	srv := newTestServer(t, &fakeSubmitter{})

	resp, err := http.Get(srv.URL + "/embed")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeSubmitter{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
