package entity

// CustomData son atributos libres enviados por la página que embebe el
// widget. Contrato de valores: string, número, bool o mapa anidado del
// mismo tipo; nada más debería llegar por el decodificador JSON.
type CustomData map[string]any

// KnownFields son los campos de perfil reconocidos dentro de CustomData.
// Punteros para distinguir "clave ausente" de "clave presente con valor vacío".
type KnownFields struct {
	FirstName   *string
	LastName    *string
	Description *string
}

// ApplyTo vuelca los campos reconocidos sobre doc. Una clave presente
// siempre gana sobre el valor previo de doc, aunque venga vacía.
func (k KnownFields) ApplyTo(doc *CustomerDoc) {
	if k.FirstName != nil {
		doc.FirstName = *k.FirstName
	}
	if k.LastName != nil {
		doc.LastName = *k.LastName
	}
	if k.Description != nil {
		doc.Description = *k.Description
	}
}

// ExtractKnownFields separa de customData las claves de perfil reconocidas
// (first_name/firstName, last_name/lastName, bio/description) y devuelve el
// resto. Es una función pura: no muta el mapa de entrada; las claves
// consumidas no sobreviven en el mapa restante, así nunca quedan duplicadas
// dentro de messengerData.customData.
func ExtractKnownFields(customData CustomData) (KnownFields, CustomData) {
	var known KnownFields
	remaining := make(CustomData, len(customData))

	for key, value := range customData {
		switch key {
		case "first_name", "firstName":
			known.FirstName = stringValue(value)
		case "last_name", "lastName":
			known.LastName = stringValue(value)
		case "bio", "description":
			known.Description = stringValue(value)
		default:
			remaining[key] = value
		}
	}

	return known, remaining
}

// stringValue normaliza el valor de una clave reconocida a *string.
// Valores no-string se descartan con cadena vacía (la clave igual se consume).
func stringValue(v any) *string {
	s, _ := v.(string)
	return &s
}
