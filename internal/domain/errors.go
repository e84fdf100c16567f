package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFilter   = errors.New("invalid dashboard filter")
	ErrSalesAPIFailure = errors.New("sales api request failed")
)

// ValidationError indica um controle da barra lateral fora da enumeração ou do intervalo
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidFilter
}

// DataFetchError representa uma falha ao buscar ou decodificar os dados da API de vendas
type DataFetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// NewDataFetchError envolve a causa com o contexto informado
func NewDataFetchError(url string, statusCode int, cause error, message string) *DataFetchError {
	err := errors.New(message)
	if cause != nil {
		err = errors.Wrap(cause, message)
	}

	return &DataFetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (e *DataFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("falha ao buscar vendas (%s, status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("falha ao buscar vendas (%s): %v", e.URL, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrSalesAPIFailure) para qualquer DataFetchError
func (e *DataFetchError) Is(target error) bool {
	return target == ErrSalesAPIFailure
}

// Cause devolve a causa original, compatível com errors.Cause
func (e *DataFetchError) Cause() error {
	return errors.Cause(e.Err)
}
