package numeric_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-leo/calc/numeric"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestParse(t *testing.T) {
	v, err := numeric.Parse("5")
	assert.NoError(t, err)
	assert.True(t, v.IsInt())
	assert.EqualValues(t, 5, v.Int64())

	v, err = numeric.Parse("-42")
	assert.NoError(t, err)
	assert.Equal(t, numeric.Int(-42), v)

	v, err = numeric.Parse("1.1")
	assert.NoError(t, err)
	assert.Equal(t, numeric.Real, v.Kind())
	assert.Equal(t, 1.1, v.Float64())

	v, err = numeric.Parse("1e3")
	assert.NoError(t, err)
	assert.Equal(t, numeric.Float(1000), v)

	v, err = numeric.Parse("92233720368547758080")
	assert.NoError(t, err)
	assert.Equal(t, numeric.Real, v.Kind())

	for _, s := range []string{"", " ", "string", "1,1", "1 1", ".", "+", "-", "+-1", "--1", "-+1", "e5", "1e", "0x10", "1_000", "1.2.3"} {
		_, err = numeric.Parse(s)
		assert.ErrorIs(t, err, numeric.ErrFailedParse, s)
	}
}

func TestParseLoose(t *testing.T) {
	cases := []struct {
		s    string
		want numeric.Value
	}{
		{s: "+1", want: numeric.Int(1)},
		{s: " 1", want: numeric.Int(1)},
		{s: "1 ", want: numeric.Int(1)},
		{s: "\t-7\n", want: numeric.Int(-7)},
		{s: "007", want: numeric.Int(7)},
		{s: ".5", want: numeric.Float(0.5)},
		{s: "-.5", want: numeric.Float(-0.5)},
		{s: "1.", want: numeric.Float(1)},
		{s: "1.e3", want: numeric.Float(1000)},
		{s: "+2.5E-1", want: numeric.Float(0.25)},
	}
	for _, c := range cases {
		v, err := numeric.Parse(c.s)
		assert.NoError(t, err, c.s)
		assert.Equal(t, c.want, v, c.s)
	}

	v, err := numeric.Parse("1e400")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v.Float64(), 1))

	v, err = numeric.Parse("-1e400")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v.Float64(), -1))
}

func TestParseMatchesLiteral(t *testing.T) {
	literals := map[string]any{"1.1": 1.1, "3": 3, "-0.25": -0.25, "1e2": 100.0, ".5": 0.5}
	for s, lit := range literals {
		p, err := numeric.Parse(s)
		assert.NoError(t, err)
		l, err := numeric.From(lit)
		assert.NoError(t, err)
		assert.True(t, p.Equal(l), "%s != %v", s, lit)
	}

	p, err := numeric.Parse("3")
	assert.NoError(t, err)
	assert.True(t, p.Equal(numeric.Float(3)))
	assert.False(t, p.Equal(numeric.Int(4)))
	assert.False(t, p.Equal(numeric.Value{}))
}

type celsius float32

type count uint8

func TestFrom(t *testing.T) {
	good := []struct {
		arg  any
		want numeric.Value
	}{
		{arg: 1, want: numeric.Int(1)},
		{arg: int8(-3), want: numeric.Int(-3)},
		{arg: uint16(7), want: numeric.Int(7)},
		{arg: count(9), want: numeric.Int(9)},
		{arg: 2.5, want: numeric.Float(2.5)},
		{arg: celsius(0.5), want: numeric.Float(0.5)},
		{arg: "1", want: numeric.Int(1)},
		{arg: "1.1", want: numeric.Float(1.1)},
		{arg: json.Number("12"), want: numeric.Int(12)},
		{arg: numeric.Float(3.5), want: numeric.Float(3.5)},
		{arg: wrapperspb.Int32(4), want: numeric.Int(4)},
		{arg: wrapperspb.Int64(-4), want: numeric.Int(-4)},
		{arg: wrapperspb.UInt32(6), want: numeric.Int(6)},
		{arg: wrapperspb.UInt64(8), want: numeric.Int(8)},
		{arg: wrapperspb.Double(0.25), want: numeric.Float(0.25)},
		{arg: wrapperspb.Float(0.5), want: numeric.Float(0.5)},
		{arg: wrapperspb.String("10"), want: numeric.Int(10)},
		{arg: structpb.NewNumberValue(2), want: numeric.Float(2)},
		{arg: structpb.NewStringValue("2"), want: numeric.Int(2)},
	}
	for _, c := range good {
		v, err := numeric.From(c.arg)
		assert.NoError(t, err, "%T(%v)", c.arg, c.arg)
		assert.Equal(t, c.want, v, "%T(%v)", c.arg, c.arg)
	}

	v, err := numeric.From(uint64(math.MaxUint64))
	assert.NoError(t, err)
	assert.Equal(t, numeric.Real, v.Kind())

	bad := []any{nil, true, "string", "1,1", []int{1}, struct{}{}, complex(1, 2), numeric.Value{},
		(*wrapperspb.Int64Value)(nil), structpb.NewBoolValue(true), wrapperspb.String("x")}
	for _, arg := range bad {
		assert.False(t, numeric.IsNumeric(arg), "%T(%v)", arg, arg)
	}
}

func TestValue(t *testing.T) {
	assert.Equal(t, "3", numeric.Int(3).String())
	assert.Equal(t, "3.25", numeric.Float(3.25).String())
	assert.Equal(t, "<invalid>", numeric.Value{}.String())

	assert.Equal(t, int64(3), numeric.Int(3).Interface())
	assert.Equal(t, 3.25, numeric.Float(3.25).Interface())
	assert.Nil(t, numeric.Value{}.Interface())

	assert.True(t, numeric.Int(2).Equal(numeric.Float(2)))
	assert.False(t, numeric.Int(2).Equal(numeric.Float(2.5)))
	assert.True(t, numeric.Float(4).IsIntegral())
	assert.False(t, numeric.Float(4.5).IsIntegral())
	assert.EqualValues(t, 4, numeric.Float(4.9).Int64())

	b, err := numeric.Float(math.NaN()).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
	b, err = numeric.Int(-7).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "-7", string(b))
}
