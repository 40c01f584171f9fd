// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqltypes

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeConverter converts a value of one type to another. Null converts to the Null of the destination.
type TypeConverter func(v Value) (Value, error)

var identityTypeConverter TypeConverter = func(v Value) (Value, error) {
	return v, nil
}

// wrap adapts a conversion method that cannot fail.
func wrap[T Value, R Value](f func(T) R) TypeConverter {
	return func(v Value) (Value, error) {
		return f(v.(T)), nil
	}
}

// wrapErr adapts a conversion method that can fail.
func wrapErr[T Value, R Value](f func(T) (R, error)) TypeConverter {
	return func(v Value) (Value, error) {
		r, err := f(v.(T))
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

// GetTypeConverter returns a TypeConverter from src to dest. needsConversion is false when the converter
// returns its input unchanged. Pairs without a conversion fail with UnhandledTypeConversion.
func GetTypeConverter(src, dest Identifier) (tc TypeConverter, needsConversion bool, err error) {
	if src == dest && src != UnknownTypeIdentifier {
		return identityTypeConverter, false, nil
	}
	switch src {
	case BooleanTypeIdentifier:
		tc = booleanTypeConverter(dest)
	case ByteTypeIdentifier:
		tc = byteTypeConverter(dest)
	case Int16TypeIdentifier:
		tc = int16TypeConverter(dest)
	case Int32TypeIdentifier:
		tc = int32TypeConverter(dest)
	case Int64TypeIdentifier:
		tc = int64TypeConverter(dest)
	case SingleTypeIdentifier:
		tc = singleTypeConverter(dest)
	case DoubleTypeIdentifier:
		tc = doubleTypeConverter(dest)
	case DecimalTypeIdentifier:
		tc = decimalTypeConverter(dest)
	case MoneyTypeIdentifier:
		tc = moneyTypeConverter(dest)
	case StringTypeIdentifier:
		tc = stringTypeConverter(dest)
	case BinaryTypeIdentifier:
		tc = binaryTypeConverter(dest)
	case GuidTypeIdentifier:
		tc = guidTypeConverter(dest)
	case DateTimeTypeIdentifier:
		tc = dateTimeTypeConverter(dest)
	}
	if tc == nil {
		return nil, false, UnhandledTypeConversion.New(src.String(), dest.String())
	}
	return tc, true, nil
}

func booleanTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case ByteTypeIdentifier:
		return wrap(Boolean.ToByte)
	case Int16TypeIdentifier:
		return wrap(Boolean.ToInt16)
	case Int32TypeIdentifier:
		return wrap(Boolean.ToInt32)
	case Int64TypeIdentifier:
		return wrap(Boolean.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Boolean.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Boolean.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Boolean.ToDecimal)
	case MoneyTypeIdentifier:
		return wrap(Boolean.ToMoney)
	case StringTypeIdentifier:
		return wrap(Boolean.ToString)
	default:
		return nil
	}
}

func byteTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Byte.ToBoolean)
	case Int16TypeIdentifier:
		return wrap(Byte.ToInt16)
	case Int32TypeIdentifier:
		return wrap(Byte.ToInt32)
	case Int64TypeIdentifier:
		return wrap(Byte.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Byte.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Byte.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Byte.ToDecimal)
	case MoneyTypeIdentifier:
		return wrap(Byte.ToMoney)
	case StringTypeIdentifier:
		return wrap(Byte.ToString)
	default:
		return nil
	}
}

func int16TypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Int16.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Int16.ToByte)
	case Int32TypeIdentifier:
		return wrap(Int16.ToInt32)
	case Int64TypeIdentifier:
		return wrap(Int16.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Int16.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Int16.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Int16.ToDecimal)
	case MoneyTypeIdentifier:
		return wrap(Int16.ToMoney)
	case StringTypeIdentifier:
		return wrap(Int16.ToString)
	default:
		return nil
	}
}

func int32TypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Int32.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Int32.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Int32.ToInt16)
	case Int64TypeIdentifier:
		return wrap(Int32.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Int32.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Int32.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Int32.ToDecimal)
	case MoneyTypeIdentifier:
		return wrap(Int32.ToMoney)
	case StringTypeIdentifier:
		return wrap(Int32.ToString)
	default:
		return nil
	}
}

func int64TypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Int64.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Int64.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Int64.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(Int64.ToInt32)
	case SingleTypeIdentifier:
		return wrap(Int64.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Int64.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Int64.ToDecimal)
	case MoneyTypeIdentifier:
		return wrapErr(Int64.ToMoney)
	case StringTypeIdentifier:
		return wrap(Int64.ToString)
	default:
		return nil
	}
}

func singleTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Single.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Single.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Single.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(Single.ToInt32)
	case Int64TypeIdentifier:
		return wrapErr(Single.ToInt64)
	case DoubleTypeIdentifier:
		return wrap(Single.ToDouble)
	case DecimalTypeIdentifier:
		return wrapErr(Single.ToDecimal)
	case MoneyTypeIdentifier:
		return wrapErr(Single.ToMoney)
	case StringTypeIdentifier:
		return wrap(Single.ToString)
	default:
		return nil
	}
}

func doubleTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Double.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Double.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Double.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(Double.ToInt32)
	case Int64TypeIdentifier:
		return wrapErr(Double.ToInt64)
	case SingleTypeIdentifier:
		return wrapErr(Double.ToSingle)
	case DecimalTypeIdentifier:
		return wrapErr(Double.ToDecimal)
	case MoneyTypeIdentifier:
		return wrapErr(Double.ToMoney)
	case StringTypeIdentifier:
		return wrap(Double.ToString)
	default:
		return nil
	}
}

func decimalTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Decimal.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Decimal.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Decimal.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(Decimal.ToInt32)
	case Int64TypeIdentifier:
		return wrapErr(Decimal.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Decimal.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Decimal.ToDouble)
	case MoneyTypeIdentifier:
		return wrapErr(Decimal.ToMoney)
	case StringTypeIdentifier:
		return wrap(Decimal.ToString)
	default:
		return nil
	}
}

func moneyTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrap(Money.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(Money.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(Money.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(Money.ToInt32)
	case Int64TypeIdentifier:
		return wrap(Money.ToInt64)
	case SingleTypeIdentifier:
		return wrap(Money.ToSingle)
	case DoubleTypeIdentifier:
		return wrap(Money.ToDouble)
	case DecimalTypeIdentifier:
		return wrap(Money.ToDecimal)
	case StringTypeIdentifier:
		return wrap(Money.ToString)
	default:
		return nil
	}
}

func stringTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BooleanTypeIdentifier:
		return wrapErr(String.ToBoolean)
	case ByteTypeIdentifier:
		return wrapErr(String.ToByte)
	case Int16TypeIdentifier:
		return wrapErr(String.ToInt16)
	case Int32TypeIdentifier:
		return wrapErr(String.ToInt32)
	case Int64TypeIdentifier:
		return wrapErr(String.ToInt64)
	case SingleTypeIdentifier:
		return wrapErr(String.ToSingle)
	case DoubleTypeIdentifier:
		return wrapErr(String.ToDouble)
	case DecimalTypeIdentifier:
		return wrapErr(String.ToDecimal)
	case MoneyTypeIdentifier:
		return wrapErr(String.ToMoney)
	case BinaryTypeIdentifier:
		return wrapErr(String.ToBinary)
	case GuidTypeIdentifier:
		return wrapErr(String.ToGuid)
	case DateTimeTypeIdentifier:
		return wrapErr(String.ToDateTime)
	default:
		return nil
	}
}

func binaryTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case GuidTypeIdentifier:
		return wrapErr(Binary.ToGuid)
	case StringTypeIdentifier:
		return wrap(Binary.ToString)
	default:
		return nil
	}
}

func guidTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case BinaryTypeIdentifier:
		return wrap(Guid.ToBinary)
	case StringTypeIdentifier:
		return wrap(Guid.ToString)
	default:
		return nil
	}
}

func dateTimeTypeConverter(dest Identifier) TypeConverter {
	switch dest {
	case StringTypeIdentifier:
		return wrap(DateTime.ToString)
	default:
		return nil
	}
}

// Convert converts v to the type dest. A Null v gives the Null of dest as long as the conversion exists.
func Convert(v Value, dest Identifier) (Value, error) {
	if v == nil {
		return nil, ErrNullArgument.New("v")
	}
	tc, _, err := GetTypeConverter(v.Type(), dest)
	if err != nil {
		return nil, err
	}
	if v.IsNull() {
		return NullOf(dest), nil
	}
	return tc(v)
}

// Parse reads s as a value of type id with the invariant grammar of that type.
func Parse(id Identifier, s string) (Value, error) {
	switch id {
	case BooleanTypeIdentifier:
		return ParseBoolean(s)
	case ByteTypeIdentifier:
		return ParseByte(s)
	case Int16TypeIdentifier:
		return ParseInt16(s)
	case Int32TypeIdentifier:
		return ParseInt32(s)
	case Int64TypeIdentifier:
		return ParseInt64(s)
	case SingleTypeIdentifier:
		return ParseSingle(s)
	case DoubleTypeIdentifier:
		return ParseDouble(s)
	case DecimalTypeIdentifier:
		return ParseDecimal(s)
	case MoneyTypeIdentifier:
		return ParseMoney(s)
	case StringTypeIdentifier:
		return NewString(s), nil
	case BinaryTypeIdentifier:
		return ParseBinary(s)
	case GuidTypeIdentifier:
		return ParseGuid(s)
	case DateTimeTypeIdentifier:
		return ParseDateTime(s)
	default:
		return nil, UnhandledTypeConversion.New(StringTypeIdentifier.String(), id.String())
	}
}

// FromNative wraps a Go value in the matching type. Values that are already a Value are returned as is.
func FromNative(v interface{}) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, ErrNullArgument.New("v")
	case Value:
		return val, nil
	case bool:
		return NewBoolean(val), nil
	case uint8:
		return NewByte(val), nil
	case int8:
		return NewInt16(int16(val)), nil
	case int16:
		return NewInt16(val), nil
	case uint16:
		return NewInt32(int32(val)), nil
	case int32:
		return NewInt32(val), nil
	case uint32:
		return NewInt64(int64(val)), nil
	case int:
		return NewInt64(int64(val)), nil
	case int64:
		return NewInt64(val), nil
	case uint64:
		return NewDecimal(decimal.NewFromUint64(val))
	case float32:
		return NewSingle(val)
	case float64:
		return NewDouble(val)
	case decimal.Decimal:
		return NewDecimal(val)
	case string:
		return NewString(val), nil
	case []byte:
		if val == nil {
			return nil, ErrNullArgument.New("v")
		}
		return NewBinary(val), nil
	case uuid.UUID:
		return NewGuid(val), nil
	case time.Time:
		return NewDateTime(val)
	default:
		return nil, ErrArgument.New("value", fmt.Sprintf("no type for a value of Go type %T", v))
	}
}
