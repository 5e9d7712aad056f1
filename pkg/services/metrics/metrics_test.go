package metrics

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDisabledService(t *testing.T) {
	s := NewPrometheusService("", zaptest.NewLogger(t))
	require.False(t, s.Enabled())
	s.Start()
	s.ShutDown()
}

func TestPrometheusService(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := NewPrometheusService(addr, zaptest.NewLogger(t))
	require.True(t, s.Enabled())
	done := make(chan struct{})
	go func() {
		s.Start()
		close(done)
	}()
	t.Cleanup(func() {
		s.ShutDown()
		<-done
	})

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/metrics")
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "go_goroutines")
}
