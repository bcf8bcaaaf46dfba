package health

// Status is the payload returned by the health endpoint. Orchestration
// probes compare the body verbatim, so the shape never varies.
type Status struct {
	Status string `json:"status"`
}

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Check returns the static readiness payload.
func (s *Service) Check() Status {
	return Status{Status: "ok"}
}
