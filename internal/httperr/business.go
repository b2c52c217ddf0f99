package httperr

import "errors"

// BusinessError carrega uma mensagem de validação destinada ao cliente.
// Camadas inferiores (ex: storage) a usam para distinguir falha de entrada
// de falha de infraestrutura.
type BusinessError struct {
	Mensagem string
}

func (e BusinessError) Error() string {
	return e.Mensagem
}

func ErrBusiness(mensagem string) error {
	return BusinessError{Mensagem: mensagem}
}

func IsBusiness(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Mensagem, true
	}
	return "", false
}
