package scene

import "time"

type LogEntry struct {
	Timestamp time.Time
	Message   string
	IsUrgent  bool
}

func (s *Scene) AddLogEntry(message string, isUrgent bool) {
	entry := LogEntry{
		Timestamp: time.Now(),
		Message:   message,
		IsUrgent:  isUrgent,
	}
	s.FlightLog = append(s.FlightLog, entry)

	if len(s.FlightLog) > s.maxFlightLogSize {
		s.FlightLog = s.FlightLog[len(s.FlightLog)-s.maxFlightLogSize:]
	}
}
