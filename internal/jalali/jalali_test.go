package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1403/05/01")
	require.NoError(t, err)

	local := got.In(ptime.Iran())
	require.Equal(t, 2024, local.Year())
	require.Equal(t, time.July, local.Month())
	require.Equal(t, 22, local.Day())
	require.Equal(t, 0, local.Hour())
}

func TestParseDateRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"1403-05-01",
		"03/05/01",
		"1403/13/01",
		"1403/00/10",
		"1403/07/31", // Mehr has 30 days
		"1403/05",
		"امروز",
	}
	for _, input := range cases {
		_, err := ParseDate(input)
		require.ErrorIs(t, err, ErrBadDate, "input %q", input)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	parsed, err := ParseDate("1403/05/01")
	require.NoError(t, err)
	require.Equal(t, "1403/05/01", Format(parsed))
}
