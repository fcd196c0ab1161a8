package numeric

import (
	"reflect"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	valueType = reflect.TypeOf(Value{})

	wrappersPBInt32PtrType  = reflect.TypeOf((*wrapperspb.Int32Value)(nil))
	wrappersPBInt64PtrType  = reflect.TypeOf((*wrapperspb.Int64Value)(nil))
	wrappersPBUint32PtrType = reflect.TypeOf((*wrapperspb.UInt32Value)(nil))
	wrappersPBUint64PtrType = reflect.TypeOf((*wrapperspb.UInt64Value)(nil))
	wrappersPBFloatPtrType  = reflect.TypeOf((*wrapperspb.FloatValue)(nil))
	wrappersPBDoublePtrType = reflect.TypeOf((*wrapperspb.DoubleValue)(nil))
	wrappersPBStringPtrType = reflect.TypeOf((*wrapperspb.StringValue)(nil))

	structPBValuePtrType = reflect.TypeOf((*structpb.Value)(nil))
)
