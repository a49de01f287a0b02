package models

// Appointment é o único registro persistido pelo serviço.
// Todos os campos são strings: date em YYYY-MM-DD, time em HH:MM
// (largura fixa, então comparação lexicográfica equivale à cronológica).
type Appointment struct {
	ID string `json:"id"`

	Service      string `json:"service"`
	ServiceName  string `json:"serviceName"`
	ServicePrice string `json:"servicePrice"`

	Date string `json:"date"`
	Time string `json:"time"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Comments string `json:"comments"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// Agenda é o envelope persistido: um documento único com a coleção
// completa, sempre sob a chave "appointments", em ordem de inserção.
type Agenda struct {
	Appointments []Appointment `json:"appointments"`
}

// FindByID retorna o índice do registro com o id dado, ou -1.
func (a *Agenda) FindByID(id string) int {
	for i := range a.Appointments {
		if a.Appointments[i].ID == id {
			return i
		}
	}
	return -1
}
