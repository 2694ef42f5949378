package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvoiceNumber(t *testing.T) {
	require.Equal(t, "FAC-000007", InvoiceNumber(7))
	require.Equal(t, "FAC-000120", InvoiceNumber(120))
	require.Equal(t, "FAC-123456", InvoiceNumber(123456))
	// ids past six digits keep every digit
	require.Equal(t, "FAC-1234567", InvoiceNumber(1234567))
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{ProductID: 3, Requested: 5, Available: 2}
	require.Contains(t, err.Error(), "producto 3")
	require.Contains(t, err.Error(), "solicitado 5")
	require.Contains(t, err.Error(), "disponible 2")
}
