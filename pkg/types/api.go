package types

// DispatchResponse is returned by POST /events/{name}.
type DispatchResponse struct {
	// Name of the dispatched event.
	// example: user_signed_up
	Event string `json:"event" example:"user_signed_up"`
	// Number of observers configured for the event; 0 means the dispatch was a no-op.
	// example: 2
	Observers int `json:"observers" example:"2"`
}

// EventsResponse wraps the configured events returned by GET /events.
type EventsResponse struct {
	// Configured events in name order.
	Events []EventInfo `json:"events"`
	// Whether missing handlers abort dispatches.
	// example: false
	DeveloperMode bool `json:"developer_mode" example:"false"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Whether an event table has been loaded.
	// example: true
	Ready bool `json:"ready" example:"true"`
	// Path the event table was loaded from.
	// example: /etc/eventd/config.xml
	Source string `json:"source,omitempty" example:"/etc/eventd/config.xml"`
	// Whether missing handlers abort dispatches.
	// example: false
	DeveloperMode bool `json:"developer_mode" example:"false"`
	// Number of configured events.
	// example: 3
	Events int `json:"events" example:"3"`
	// Number of configured observer bindings across all events.
	// example: 5
	Bindings int `json:"bindings" example:"5"`
	// Class names with a cached singleton instance.
	// example: ["Auditor"]
	Singletons []string `json:"singletons"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
