package domain

// ServiceStatus is the body returned by the API root endpoints.
// Field order is the wire order.
type ServiceStatus struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// TestResult is the body returned by the simple connectivity test.
type TestResult struct {
	Test   string `json:"test"`
	Status string `json:"status"`
}

// Fixed payloads. They never change at runtime.
var (
	RootStatus    = ServiceStatus{Message: "BetterGovPH API", Status: "running"}
	TestAPIStatus = ServiceStatus{Message: "Open Monitoring API", Status: "running"}
	SimpleTest    = TestResult{Test: "simple", Status: "ok"}
)

// AgentRestart is the placeholder reply for agent restart requests.
type AgentRestart struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

func NewAgentRestart(location string) AgentRestart {
	return AgentRestart{
		Status:   "not_implemented",
		Location: location,
		Message:  "Agent restart not yet implemented",
	}
}

// Health is the detailed health report served at /api/health.
type Health struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  HealthServices `json:"services"`
}

type HealthServices struct {
	WebSocket WebSocketHealth `json:"websocket"`
}

type WebSocketHealth struct {
	Clients int `json:"clients"`
}
