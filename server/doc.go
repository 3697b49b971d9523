// Package server exposes the sweep over HTTP for manual testing and
// integration.
//
// Routes:
//
//	POST /solve    body is a text grid; replies with the report
//	               (?format=text|json, ?threshold=N, ?truncate=false)
//	GET  /ws       websocket session: every text message is a grid,
//	               every reply is a JSON document
//	GET  /metrics  Prometheus metrics
//	GET  /healthz  liveness check
//
// Each request builds its own grid and paths; handlers share nothing but
// the metrics registry and the logger.
package server
