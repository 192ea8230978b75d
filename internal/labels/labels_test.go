package labels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/model"
)

func TestLookupFallsBackToRawValue(t *testing.T) {
	require.Equal(t, "چک", PaymentMethod(model.PaymentMethodCheque))
	require.Equal(t, "SOMETHING_NEW", PaymentMethod("SOMETHING_NEW"))
}

func TestRial(t *testing.T) {
	require.Equal(t, "0 ریال", Rial(0))
	require.Equal(t, "950 ریال", Rial(950))
	require.Equal(t, "1,000 ریال", Rial(1000))
	require.Equal(t, "12,345,678 ریال", Rial(12345678))
	require.Equal(t, "-4,500 ریال", Rial(-4500))
}
