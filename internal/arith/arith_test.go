package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumcheck/sumcheck/pkg/errors"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		policy  Policy
		want    int64
		wantErr bool
	}{
		{
			name:   "handles positive input",
			a:      1,
			b:      2,
			policy: PolicyChecked,
			want:   3,
		},
		{
			name:   "boundary around zero",
			a:      -1,
			b:      1,
			policy: PolicyChecked,
			want:   0,
		},
		{
			name:   "identity element",
			a:      0,
			b:      42,
			policy: PolicyChecked,
			want:   42,
		},
		{
			name:   "both negative",
			a:      -5,
			b:      -7,
			policy: PolicyChecked,
			want:   -12,
		},
		{
			name:   "large mixed sign never overflows",
			a:      math.MaxInt64,
			b:      math.MinInt64,
			policy: PolicyChecked,
			want:   -1,
		},
		{
			name:    "positive overflow checked",
			a:       math.MaxInt64,
			b:       1,
			policy:  PolicyChecked,
			wantErr: true,
		},
		{
			name:    "negative overflow checked",
			a:       math.MinInt64,
			b:       -1,
			policy:  PolicyChecked,
			wantErr: true,
		},
		{
			name:   "positive overflow wraps",
			a:      math.MaxInt64,
			b:      1,
			policy: PolicyWrap,
			want:   math.MinInt64,
		},
		{
			name:   "negative overflow wraps",
			a:      math.MinInt64,
			b:      -1,
			policy: PolicyWrap,
			want:   math.MaxInt64,
		},
		{
			name:   "positive overflow saturates",
			a:      math.MaxInt64,
			b:      1,
			policy: PolicySaturate,
			want:   math.MaxInt64,
		},
		{
			name:   "negative overflow saturates",
			a:      math.MinInt64,
			b:      -1,
			policy: PolicySaturate,
			want:   math.MinInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.a, tt.b, tt.policy)
			if tt.wantErr {
				require.Error(t, err)
				var overflow *errors.OverflowError
				assert.ErrorAs(t, err, &overflow)
				assert.Equal(t, tt.a, overflow.A)
				assert.Equal(t, tt.b, overflow.B)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddCommutativity(t *testing.T) {
	pairs := [][2]int64{
		{1, 2},
		{0, 0},
		{-1, 1},
		{math.MaxInt64, math.MinInt64},
		{123456789, -987654321},
	}

	for _, pair := range pairs {
		ab, errAB := Add(pair[0], pair[1], PolicyChecked)
		ba, errBA := Add(pair[1], pair[0], PolicyChecked)
		require.NoError(t, errAB)
		require.NoError(t, errBA)
		assert.Equal(t, ab, ba, "Add(%d, %d) should be commutative", pair[0], pair[1])
	}
}

func TestAddIdentity(t *testing.T) {
	for _, n := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 31337} {
		got, err := Add(0, n, PolicyChecked)
		require.NoError(t, err)
		assert.Equal(t, n, got, "Add(0, %d) should be the identity", n)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Policy
		wantErr bool
	}{
		{name: "checked", input: "checked", want: PolicyChecked},
		{name: "wrap", input: "wrap", want: PolicyWrap},
		{name: "saturate", input: "saturate", want: PolicySaturate},
		{name: "mixed case", input: "Checked", want: PolicyChecked},
		{name: "surrounding whitespace", input: " wrap ", want: PolicyWrap},
		{name: "unknown", input: "clamp", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "checked", PolicyChecked.String())
	assert.Equal(t, "wrap", PolicyWrap.String())
	assert.Equal(t, "saturate", PolicySaturate.String())
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive", input: "42", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "zero", input: "0", want: 0},
		{name: "max int64", input: "9223372036854775807", want: math.MaxInt64},
		{name: "min int64", input: "-9223372036854775808", want: math.MinInt64},
		{name: "whitespace trimmed", input: " 13 ", want: 13},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "out of range", input: "9223372036854775808", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *errors.ParseError
				assert.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.input, parseErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
