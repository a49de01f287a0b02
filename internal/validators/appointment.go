package validators

// requiredFields fixa a ordem de checagem: o primeiro campo vazio é o
// único reportado, então a ordem faz parte do contrato.
var requiredFields = []string{"service", "date", "time", "name", "phone"}

// FirstMissingField devolve o nome do primeiro campo obrigatório vazio,
// na ordem service, date, time, name, phone. Vazio = tudo presente.
func FirstMissingField(values map[string]string) string {
	for _, f := range requiredFields {
		if values[f] == "" {
			return f
		}
	}
	return ""
}
