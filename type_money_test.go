package fintrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "50", want: M(50)},
		{in: "50.25", want: M(50.25)},
		{in: "0", want: M(0)},
		{in: "0.00", want: M(0)},
		{in: "-1", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want.Plain(), got.Plain())
		})
	}
}

func TestMoneyPlain(t *testing.T) {
	m, err := ParseMoney("50.2")
	require.NoError(t, err)
	assert.Equal(t, "50.20", m.Plain())
	assert.Equal(t, "0.00", Money{}.Plain())
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("2.5")
	require.NoError(t, err)
	assert.Equal(t, "2.5%", r.String())

	_, err = ParseRate("-1")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseRate("x")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRateApplyTo(t *testing.T) {
	// 1% of 1000 is 10.
	r := R(1)
	assert.True(t, M(10).Equal(r.ApplyTo(M(1000))))

	// Semi-annual credit on 2.5% annual over 10000 is 125.
	half := R(2.5).Halve()
	assert.True(t, M(125).Equal(half.ApplyTo(M(10000))))
}
