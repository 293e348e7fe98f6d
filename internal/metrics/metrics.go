// Package metrics exposes Prometheus telemetry for the detection service.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	detectRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plainsight_detect_requests_total",
			Help: "Detection requests by cipher hint and outcome.",
		},
		[]string{"cipher", "outcome"},
	)

	solverDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "plainsight_solver_duration_seconds",
			Help:    "Wall time spent inside each cipher family's solver.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		},
		[]string{"cipher"},
	)

	inFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "plainsight_detect_in_flight",
			Help: "Detection requests currently being processed.",
		},
	)
)

func init() {
	prometheus.MustRegister(detectRequests, solverDuration, inFlight)
}

// RecordRequest counts one finished detection request.
func RecordRequest(cipher, outcome string) {
	detectRequests.WithLabelValues(cipher, outcome).Inc()
}

// ObserveSolver records one solver invocation's wall time.
func ObserveSolver(cipher string, d time.Duration) {
	solverDuration.WithLabelValues(cipher).Observe(d.Seconds())
}

// RequestStarted marks a request in flight and returns the matching done
// callback.
func RequestStarted() (done func()) {
	inFlight.Inc()
	return inFlight.Dec
}

// Serve exposes the Prometheus endpoint on addr until ctx is cancelled. An
// empty addr disables the listener.
func Serve(ctx context.Context, addr string) error {
	if addr == "" {
		<-ctx.Done()
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return <-errCh
	case err := <-errCh:
		return err
	}
}
