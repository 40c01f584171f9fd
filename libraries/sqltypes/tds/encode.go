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
	"github.com/dolthub/sqltypes/libraries/sqltypes"
	"github.com/dolthub/sqltypes/libraries/sqltypes/collation"
)

// Collation flag bits, stored above the 20 LCID bits of the collation word.
const (
	lcidMask          = 0xfffff
	flagIgnoreCase    = 0x01
	flagIgnoreAccent  = 0x02
	flagIgnoreWidth   = 0x04
	flagIgnoreKana    = 0x08
	flagBinary        = 0x10
	flagBinary2       = 0x20
	collationFlagBits = 20
)

var optionFlags = []struct {
	opt  collation.CompareOptions
	flag uint32
}{
	{collation.IgnoreCase, flagIgnoreCase},
	{collation.IgnoreNonSpace, flagIgnoreAccent},
	{collation.IgnoreWidth, flagIgnoreWidth},
	{collation.IgnoreKanaType, flagIgnoreKana},
	{collation.BinarySort, flagBinary},
	{collation.BinarySort2, flagBinary2},
}

// Encode returns the encoding of v.
func Encode(v sqltypes.Value) ([]byte, error) {
	return AppendValue(nil, v)
}

// EncodeRow encodes vals one after another.
func EncodeRow(vals ...sqltypes.Value) ([]byte, error) {
	var buf []byte
	var err error
	for _, v := range vals {
		if buf, err = AppendValue(buf, v); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// AppendValue appends the encoding of v to buf and returns the extended buffer.
func AppendValue(buf []byte, v sqltypes.Value) ([]byte, error) {
	if v == nil {
		return nil, sqltypes.ErrNullArgument.New("v")
	}
	switch x := v.(type) {
	case sqltypes.Boolean:
		b, _ := x.ByteValue()
		return appendFixed(buf, BitNType, byteSize, x.IsNull(), func(p []byte) { writeUint8(p, b) }), nil
	case sqltypes.Byte:
		n, _ := x.Value()
		return appendFixed(buf, IntNType, byteSize, x.IsNull(), func(p []byte) { writeUint8(p, n) }), nil
	case sqltypes.Int16:
		n, _ := x.Value()
		return appendFixed(buf, IntNType, int16Size, x.IsNull(), func(p []byte) { writeInt16(p, n) }), nil
	case sqltypes.Int32:
		n, _ := x.Value()
		return appendFixed(buf, IntNType, int32Size, x.IsNull(), func(p []byte) { writeInt32(p, n) }), nil
	case sqltypes.Int64:
		n, _ := x.Value()
		return appendFixed(buf, IntNType, int64Size, x.IsNull(), func(p []byte) { writeInt64(p, n) }), nil
	case sqltypes.Single:
		f, _ := x.Value()
		return appendFixed(buf, FltNType, float32Size, x.IsNull(), func(p []byte) { writeFloat32(p, f) }), nil
	case sqltypes.Double:
		f, _ := x.Value()
		return appendFixed(buf, FltNType, float64Size, x.IsNull(), func(p []byte) { writeFloat64(p, f) }), nil
	case sqltypes.Money:
		t, _ := x.Ticks()
		return appendFixed(buf, MoneyNType, moneySize, x.IsNull(), func(p []byte) { writeMoney(p, t) }), nil
	case sqltypes.DateTime:
		day, _ := x.DayTicks()
		ticks, _ := x.TimeTicks()
		return appendFixed(buf, DateTimeNType, dateTimeSize, x.IsNull(), func(p []byte) {
			writeInt32(p[:int32Size], day)
			writeUint32(p[int32Size:], uint32(ticks))
		}), nil
	case sqltypes.Guid:
		b := x.ToByteArray()
		return appendFixed(buf, GuidType, guidSize, x.IsNull(), func(p []byte) { copy(p, b) }), nil
	case sqltypes.Decimal:
		return appendDecimal(buf, x)
	case sqltypes.Binary:
		if x.IsNull() {
			return appendVar(buf, BigVarBinType, nil, nil, true), nil
		}
		b, _ := x.Value()
		if len(b) > MaxVarLength {
			return nil, ErrTooLong.New(BigVarBinType, len(b), MaxVarLength)
		}
		return appendVar(buf, BigVarBinType, nil, b, false), nil
	case sqltypes.String:
		if x.IsNull() {
			return appendVar(buf, NVarCharType, encodeCollation(collation.Default), nil, true), nil
		}
		coll := encodeCollation(x.Collation())
		b, err := x.UnicodeBytes()
		if err != nil {
			return nil, err
		}
		if len(b) > MaxVarLength {
			return nil, ErrTooLong.New(NVarCharType, len(b), MaxVarLength)
		}
		return appendVar(buf, NVarCharType, coll, b, false), nil
	default:
		return nil, sqltypes.ErrUnknownType.New(v.Type())
	}
}

// appendFixed writes the type byte, the maximum length and either a zero length or size bytes
// filled in by write.
func appendFixed(buf []byte, id TypeID, size int, null bool, write func([]byte)) []byte {
	buf = append(buf, byte(id), byte(size))
	if null {
		return append(buf, 0)
	}
	buf = append(buf, byte(size))
	start := len(buf)
	buf = append(buf, make([]byte, size)...)
	write(buf[start:])
	return buf
}

func appendDecimal(buf []byte, x sqltypes.Decimal) ([]byte, error) {
	precision, scale := x.Precision(), x.Scale()
	if x.IsNull() {
		precision, scale = sqltypes.MaxPrecision, 0
	}
	size := decimalLength(precision)
	buf = append(buf, byte(DecimalNType), byte(size), precision, scale)
	if x.IsNull() {
		return append(buf, 0), nil
	}
	positive, err := x.IsPositive()
	if err != nil {
		return nil, err
	}
	mantissa, err := x.BinData()
	if err != nil {
		return nil, err
	}
	buf = append(buf, byte(size))
	if positive {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return append(buf, mantissa[:size-1]...), nil
}

func appendVar(buf []byte, id TypeID, coll []byte, data []byte, null bool) []byte {
	var word [int16Size]byte
	buf = append(buf, byte(id))
	writeUint16(word[:], MaxVarLength)
	buf = append(buf, word[:]...)
	buf = append(buf, coll...)
	if null {
		writeUint16(word[:], nullVarLength)
		return append(buf, word[:]...)
	}
	writeUint16(word[:], uint16(len(data)))
	buf = append(buf, word[:]...)
	return append(buf, data...)
}

func encodeCollation(c collation.Collation) []byte {
	var flags uint32
	for _, of := range optionFlags {
		if c.Options.Has(of.opt) {
			flags |= of.flag
		}
	}
	b := make([]byte, collationSize)
	writeUint32(b[:int32Size], c.LCID&lcidMask|flags<<collationFlagBits)
	return b
}
