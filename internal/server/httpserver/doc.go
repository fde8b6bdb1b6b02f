// Package httpserver provides the HTTP server behind tabsample serve.
//
// The server exposes a small operational surface using stdlib net/http:
//
//   - /metrics: Prometheus exposition of the sampling metrics
//   - /healthz: liveness, always 200 while the process serves
//   - /readyz: readiness, 503 until the sampling loop is running
//
// Every request passes through Recover, RequestID and Access middleware.
package httpserver
