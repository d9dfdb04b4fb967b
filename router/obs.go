package router

import "dqx0.com/go/minirouter/internal/obs"

// Logging and metrics collaborators, re-exported so embedders can supply
// their own implementations.
type (
	Logger = obs.Logger
	Level  = obs.Level
	Meter  = obs.Meter
	Label  = obs.Label
)

const (
	LevelDebug = obs.Debug
	LevelLog   = obs.Log
	LevelInfo  = obs.Info
	LevelWarn  = obs.Warn
	LevelError = obs.Error
)

const (
	metricRequests       = "router_requests_total"
	metricNotFound       = "router_not_found_total"
	metricHandlerErrors  = "router_handler_errors_total"
	metricDispatchMillis = "router_dispatch_duration_ms"
	metricConnections    = "router_connections_total"
	metricParseErrors    = "router_parse_errors_total"
	metricPanics         = "router_panics_total"
)

func loggerOr(l Logger) Logger {
	if l == nil {
		return obs.NopLogger{}
	}
	return l
}

func meterOr(m Meter) Meter {
	if m == nil {
		return obs.NopMeter{}
	}
	return m
}
