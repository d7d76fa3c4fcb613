package widget

// ActivityNotifier es el colaborador externo de registro de actividad.
// El contrato es de mejor esfuerzo: las implementaciones no bloquean y un
// fallo de notificación jamás hace fallar la operación que la disparó.
type ActivityNotifier interface {
	CustomerCreated(id string)
	CompanyCreated(id string)
}

// NoopNotifier descarta toda notificación. Se usa en tests y en despliegues
// sin API principal configurado.
type NoopNotifier struct{}

func (NoopNotifier) CustomerCreated(string) {}
func (NoopNotifier) CompanyCreated(string)  {}
