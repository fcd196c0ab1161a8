package numeric

import (
	"math"
	"reflect"
	"strconv"
)

// Assign converts v into a reflect.Value of type tgtType.
//
// Integer kinds receive integral values only, unsigned kinds reject negative
// numbers, and every kind is range checked. An empty interface receives the
// native int64 or float64; Value and interfaces implemented by Value receive
// v itself.
func Assign(tgtType reflect.Type, v Value) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, newUnsupportedTypeError(valueType)
	}
	if tgtType == valueType {
		return reflect.ValueOf(v), nil
	}
	switch tgtType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedOf(tgtType, v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedOf(tgtType, v)
	case reflect.Float32, reflect.Float64:
		return realOf(tgtType, v.Float64())
	case reflect.Interface:
		tgtVal := reflect.New(tgtType).Elem()
		if tgtType.NumMethod() == 0 {
			tgtVal.Set(reflect.ValueOf(v.Interface()))
			return tgtVal, nil
		}
		if valueType.Implements(tgtType) {
			tgtVal.Set(reflect.ValueOf(v))
			return tgtVal, nil
		}
	}
	return reflect.Value{}, newUnsupportedTypeError(tgtType)
}

// signedOf narrows v into an integer kind. Real values must be whole.
func signedOf(tgtType reflect.Type, v Value) (reflect.Value, error) {
	i := v.i
	if !v.IsInt() {
		if !v.IsIntegral() {
			return reflect.Value{}, newFractionError(tgtType, v.String())
		}
		if v.f >= float64(math.MaxInt64) || v.f < float64(math.MinInt64) {
			return reflect.Value{}, newOverflowError(tgtType, strconv.FormatFloat(v.f, 'f', -1, 64))
		}
		i = int64(v.f)
	}
	tgtVal := reflect.New(tgtType).Elem()
	if tgtVal.OverflowInt(i) {
		return reflect.Value{}, newOverflowError(tgtType, strconv.FormatInt(i, 10))
	}
	tgtVal.SetInt(i)
	return tgtVal, nil
}

// unsignedOf narrows v into an unsigned kind. Negative and fractional values
// are rejected.
func unsignedOf(tgtType reflect.Type, v Value) (reflect.Value, error) {
	if v.Float64() < 0 {
		return reflect.Value{}, newNegativeNumberError(tgtType, v.String())
	}
	u := uint64(v.i)
	if !v.IsInt() {
		if !v.IsIntegral() {
			return reflect.Value{}, newFractionError(tgtType, v.String())
		}
		if v.f >= float64(math.MaxUint64) {
			return reflect.Value{}, newOverflowError(tgtType, strconv.FormatFloat(v.f, 'f', -1, 64))
		}
		u = uint64(v.f)
	}
	tgtVal := reflect.New(tgtType).Elem()
	if tgtVal.OverflowUint(u) {
		return reflect.Value{}, newOverflowError(tgtType, strconv.FormatUint(u, 10))
	}
	tgtVal.SetUint(u)
	return tgtVal, nil
}

func realOf(tgtType reflect.Type, f float64) (reflect.Value, error) {
	tgtVal := reflect.New(tgtType).Elem()
	if tgtVal.OverflowFloat(f) {
		return reflect.Value{}, newOverflowError(tgtType, strconv.FormatFloat(f, 'f', -1, 64))
	}
	tgtVal.SetFloat(f)
	return tgtVal, nil
}
