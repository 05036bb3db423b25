package node

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/grpc"
	"github.com/starkstream/node/provider"
)

func makeDBMetrics() db.EventListener {
	latencyBuckets := []float64{
		25,
		50,
		75,
		100,
		250,
		500,
		1000, // 1ms
		2000,
		5000,
		10000,
		50000,
		500000,
		math.Inf(0),
	}
	readLatencyHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "db",
		Name:      "read_latency",
		Buckets:   latencyBuckets,
	})
	writeLatencyHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "db",
		Name:      "write_latency",
		Buckets:   latencyBuckets,
	})

	prometheus.MustRegister(readLatencyHistogram, writeLatencyHistogram)
	return &db.SelectiveListener{
		OnIOCb: func(write bool, duration time.Duration) {
			if write {
				writeLatencyHistogram.Observe(float64(duration.Microseconds()))
			} else {
				readLatencyHistogram.Observe(float64(duration.Microseconds()))
			}
		},
	}
}

func makeProviderMetrics() provider.EventListener {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "provider",
		Name:      "requests",
	}, []string{"method"})
	failedRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "provider",
		Name:      "failed_requests",
	}, []string{"method"})
	requestLatencies := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "provider",
		Name:      "requests_latency",
	}, []string{"method"})

	prometheus.MustRegister(requests, failedRequests, requestLatencies)
	return &provider.SelectiveListener{
		OnRequestCb: func(method string, took time.Duration, err error) {
			requests.WithLabelValues(method).Inc()
			requestLatencies.WithLabelValues(method).Observe(took.Seconds())
			if err != nil {
				failedRequests.WithLabelValues(method).Inc()
			}
		},
	}
}

func makeGRPCMetrics() grpc.EventListener {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grpc",
		Subsystem: "server",
		Name:      "requests",
	}, []string{"method"})
	failedRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grpc",
		Subsystem: "server",
		Name:      "failed_requests",
	}, []string{"method"})

	prometheus.MustRegister(requests, failedRequests)
	return &grpc.SelectiveListener{
		OnRPCCb: func(method string, _ time.Duration, err error) {
			requests.WithLabelValues(method).Inc()
			if err != nil {
				failedRequests.WithLabelValues(method).Inc()
			}
		},
	}
}
