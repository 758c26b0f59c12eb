package types

// EventInfo describes one configured event.
type EventInfo struct {
	// Event name.
	// example: user_signed_up
	Name string `json:"name" example:"user_signed_up"`
	// Observers in dispatch order.
	Observers []BindingInfo `json:"observers"`
}

// BindingInfo describes one observer binding.
type BindingInfo struct {
	// Binding key, unique within the event.
	// example: audit
	Key string `json:"key" example:"audit"`
	// Observer class name.
	// example: Auditor
	Class string `json:"class" example:"Auditor"`
	// Handler method name.
	// example: record
	Method string `json:"method" example:"record"`
	// Whether the observer is resolved as a shared singleton.
	// example: true
	Singleton bool `json:"singleton" example:"true"`
}
