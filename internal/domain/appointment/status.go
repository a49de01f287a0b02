package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
)

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusConfirmed
}

// IsActive diz se o agendamento ainda ocupa o horário.
// O status é monótono: uma vez cancelado, nunca volta.
func IsActive(current Status) bool {
	return current != StatusCancelled
}
