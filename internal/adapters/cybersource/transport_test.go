package cybersource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTransport_Send(t *testing.T) {
	var received *http.Request
	var receivedBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(context.Background())
		receivedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte("<reply/>"))
	}))
	defer srv.Close()

	tr := NewTransport(TransportConfig{Endpoint: srv.URL}, nil, zaptest.NewLogger(t))

	body, err := tr.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)

	assert.Equal(t, []byte("<reply/>"), body)
	require.NotNil(t, received)
	assert.Equal(t, http.MethodPost, received.Method)
	assert.Equal(t, "application/xml", received.Header.Get("Content-Type"))
	assert.NotEmpty(t, received.Header.Get("X-Correlation-Id"))
	assert.Equal(t, []byte("<request/>"), receivedBody)
}

func TestTransport_Send_Non2xxBodyPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<soap:Fault/>"))
	}))
	defer srv.Close()

	tr := NewTransport(TransportConfig{Endpoint: srv.URL}, nil, zaptest.NewLogger(t))

	body, err := tr.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)
	assert.Equal(t, []byte("<soap:Fault/>"), body)
}

func TestTransport_Send_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	tr := NewTransport(TransportConfig{Endpoint: srv.URL, Timeout: 50 * time.Millisecond}, nil, zaptest.NewLogger(t))

	_, err := tr.Send(context.Background(), []byte("<request/>"))

	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeGatewayTimeout))
}

func TestTransport_Send_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	tr := NewTransport(TransportConfig{Endpoint: endpoint}, nil, zaptest.NewLogger(t))

	_, err := tr.Send(context.Background(), []byte("<request/>"))

	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeConnectionFailed))
}

func TestTransport_Send_MockClient(t *testing.T) {
	client := &mocks.MockHTTPClient{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return mocks.XMLResponse("<reply/>"), nil
		},
	}
	tr := NewTransport(TransportConfig{Endpoint: "https://gateway.test/soap"}, client, zaptest.NewLogger(t))

	body, err := tr.Send(context.Background(), []byte("<request/>"))
	require.NoError(t, err)
	assert.Equal(t, []byte("<reply/>"), body)

	require.Len(t, client.Calls, 1)
	req := client.Calls[0]
	assert.Equal(t, "https://gateway.test/soap", req.URL.String())

	// the per-request deadline derives from the configured timeout
	deadline, ok := req.Context().Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
}

func TestNewTransport_Defaults(t *testing.T) {
	tr := NewTransport(TransportConfig{Endpoint: "https://gateway.test"}, nil, zaptest.NewLogger(t))
	assert.Equal(t, DefaultTimeout, tr.config.Timeout)
	assert.NotNil(t, tr.client)
}
