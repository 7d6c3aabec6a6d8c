package state

// Status describes the outcome of the most recent operation against a slice.
type Status struct {
	Loading bool
	Error   bool
	Success bool
	Message string
}

// Idle reports whether no outcome is pending or displayed.
func (s Status) Idle() bool {
	return !s.Loading && !s.Error && !s.Success && s.Message == ""
}

// start marks an operation in flight. Prior outcome flags are deliberately
// kept so a displayed banner does not flicker while a refresh runs.
func (s *Status) start() {
	s.Loading = true
}

// succeed records a fulfilled operation.
func (s *Status) succeed(message string) {
	s.Loading = false
	s.Success = true
	s.Error = false
	s.Message = message
}

// fail records a rejected operation.
func (s *Status) fail(message string) {
	s.Loading = false
	s.Error = true
	s.Success = false
	s.Message = message
}

// reset returns the status to idle without touching entity storage.
func (s *Status) reset() {
	*s = Status{}
}
