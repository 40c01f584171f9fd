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

package tds

import (
	"fmt"

	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

type reader struct {
	buf []byte
	pos int
	id  TypeID
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("need %d bytes at offset %d, have %d", n, r.pos, len(r.buf)-r.pos))
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) uint8() (uint8, error) {
	b, err := r.take(byteSize)
	if err != nil {
		return 0, err
	}
	return readUint8(b), nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.take(int16Size)
	if err != nil {
		return 0, err
	}
	return readUint16(b), nil
}

// Decode reads one value from the front of buf, returning it with the number of bytes consumed.
func Decode(buf []byte) (sqltypes.Value, int, error) {
	r := &reader{buf: buf}
	v, err := r.value()
	if err != nil {
		return nil, 0, err
	}
	return v, r.pos, nil
}

// DecodeRow reads values until buf is exhausted.
func DecodeRow(buf []byte) ([]sqltypes.Value, error) {
	var vals []sqltypes.Value
	for len(buf) > 0 {
		v, n, err := Decode(buf)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		buf = buf[n:]
	}
	return vals, nil
}

func (r *reader) value() (sqltypes.Value, error) {
	t, err := r.uint8()
	if err != nil {
		return nil, err
	}
	r.id = TypeID(t)
	switch r.id {
	case BitNType, IntNType, FltNType, MoneyNType, DateTimeNType, GuidType:
		return r.fixed()
	case DecimalNType:
		return r.decimal()
	case BigVarBinType, NVarCharType:
		return r.variable()
	default:
		return nil, ErrUnsupportedType.New(t)
	}
}

func (r *reader) fixed() (sqltypes.Value, error) {
	maxLen, err := r.uint8()
	if err != nil {
		return nil, err
	}
	null, err := fixedNull(r.id, maxLen)
	if err != nil {
		return nil, err
	}
	n, err := r.uint8()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return null, nil
	}
	if n != maxLen {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("length %d does not match %d", n, maxLen))
	}
	p, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	switch null.(type) {
	case sqltypes.Boolean:
		return sqltypes.NewBoolean(readUint8(p) != 0), nil
	case sqltypes.Byte:
		return sqltypes.NewByte(readUint8(p)), nil
	case sqltypes.Int16:
		return sqltypes.NewInt16(readInt16(p)), nil
	case sqltypes.Int32:
		return sqltypes.NewInt32(readInt32(p)), nil
	case sqltypes.Int64:
		return sqltypes.NewInt64(readInt64(p)), nil
	case sqltypes.Single:
		return r.wrap(sqltypes.NewSingle(readFloat32(p)))
	case sqltypes.Double:
		return r.wrap(sqltypes.NewDouble(readFloat64(p)))
	case sqltypes.Money:
		return sqltypes.NewMoneyFromTicks(readMoney(p)), nil
	case sqltypes.DateTime:
		ticks := readUint32(p[int32Size:])
		if ticks > sqltypes.MaxTimeTicks {
			return nil, ErrMalformed.New(r.id, fmt.Sprintf("time ticks %d out of range", ticks))
		}
		return r.wrap(sqltypes.NewDateTimeFromTicks(readInt32(p[:int32Size]), int32(ticks)))
	default:
		return r.wrap(sqltypes.NewGuidFromBytes(p))
	}
}

// fixedNull returns the Null of the value type that id and maxLen describe.
func fixedNull(id TypeID, maxLen uint8) (sqltypes.Value, error) {
	switch {
	case id == BitNType && maxLen == byteSize:
		return sqltypes.BooleanNull, nil
	case id == IntNType && maxLen == byteSize:
		return sqltypes.ByteNull, nil
	case id == IntNType && maxLen == int16Size:
		return sqltypes.Int16Null, nil
	case id == IntNType && maxLen == int32Size:
		return sqltypes.Int32Null, nil
	case id == IntNType && maxLen == int64Size:
		return sqltypes.Int64Null, nil
	case id == FltNType && maxLen == float32Size:
		return sqltypes.SingleNull, nil
	case id == FltNType && maxLen == float64Size:
		return sqltypes.DoubleNull, nil
	case id == MoneyNType && maxLen == moneySize:
		return sqltypes.MoneyNull, nil
	case id == DateTimeNType && maxLen == dateTimeSize:
		return sqltypes.DateTimeNull, nil
	case id == GuidType && maxLen == guidSize:
		return sqltypes.GuidNull, nil
	default:
		return nil, ErrMalformed.New(id, fmt.Sprintf("unsupported length %d", maxLen))
	}
}

func (r *reader) decimal() (sqltypes.Value, error) {
	hdr, err := r.take(3)
	if err != nil {
		return nil, err
	}
	maxLen, precision, scale := int(hdr[0]), hdr[1], hdr[2]
	if maxLen != decimalLength(precision) {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("length %d does not fit precision %d", maxLen, precision))
	}
	n, err := r.uint8()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return sqltypes.DecimalNull, nil
	}
	if int(n) != maxLen {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("length %d does not match %d", n, maxLen))
	}
	p, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	var data [4]uint32
	var mantissa [decimalSize - 1]byte
	copy(mantissa[:], p[1:])
	for i := range data {
		data[i] = readUint32(mantissa[i*int32Size : (i+1)*int32Size])
	}
	return r.wrap(sqltypes.NewDecimalFromParts(precision, scale, p[0] != 0, data))
}

func (r *reader) variable() (sqltypes.Value, error) {
	maxLen, err := r.uint16()
	if err != nil {
		return nil, err
	}
	if maxLen > MaxVarLength {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("maximum length %d exceeds %d", maxLen, MaxVarLength))
	}
	coll := collation.Default
	if r.id == NVarCharType {
		b, err := r.take(collationSize)
		if err != nil {
			return nil, err
		}
		if coll, err = decodeCollation(b); err != nil {
			return nil, ErrMalformed.New(r.id, err.Error())
		}
	}
	n, err := r.uint16()
	if err != nil {
		return nil, err
	}
	if n == nullVarLength {
		if r.id == NVarCharType {
			return sqltypes.StringNull, nil
		}
		return sqltypes.BinaryNull, nil
	}
	if n > maxLen {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("length %d exceeds maximum %d", n, maxLen))
	}
	p, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	if r.id == BigVarBinType {
		return sqltypes.NewBinary(p), nil
	}
	if n%2 != 0 {
		return nil, ErrMalformed.New(r.id, fmt.Sprintf("odd length %d", n))
	}
	return r.wrap(sqltypes.NewStringFromBytes(coll, p, true))
}

func decodeCollation(b []byte) (collation.Collation, error) {
	info := readUint32(b[:int32Size])
	flags := info >> collationFlagBits
	var opts collation.CompareOptions
	for _, of := range optionFlags {
		if flags&of.flag != 0 {
			opts |= of.opt
		}
	}
	return collation.New(info&lcidMask, opts)
}

// wrap reports a value that cannot be built from well framed bytes as malformed.
func (r *reader) wrap(v sqltypes.Value, err error) (sqltypes.Value, error) {
	if err != nil {
		return nil, ErrMalformed.New(r.id, err.Error())
	}
	return v, nil
}
