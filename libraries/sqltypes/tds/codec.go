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
	"encoding/binary"
	"math"
)

func expectSize(buf []byte, sz int) {
	if len(buf) != sz {
		panic("byte slice is not of expected size")
	}
}

func readUint8(val []byte) uint8 {
	expectSize(val, byteSize)
	return val[0]
}

func readUint16(val []byte) uint16 {
	expectSize(val, int16Size)
	return binary.LittleEndian.Uint16(val)
}

func readInt16(val []byte) int16 {
	expectSize(val, int16Size)
	return int16(binary.LittleEndian.Uint16(val))
}

func readUint32(val []byte) uint32 {
	expectSize(val, int32Size)
	return binary.LittleEndian.Uint32(val)
}

func readInt32(val []byte) int32 {
	expectSize(val, int32Size)
	return int32(binary.LittleEndian.Uint32(val))
}

func readInt64(val []byte) int64 {
	expectSize(val, int64Size)
	return int64(binary.LittleEndian.Uint64(val))
}

func readFloat32(val []byte) float32 {
	expectSize(val, float32Size)
	return math.Float32frombits(readUint32(val))
}

func readFloat64(val []byte) float64 {
	expectSize(val, float64Size)
	return math.Float64frombits(binary.LittleEndian.Uint64(val))
}

// readMoney reads the high 32 bits followed by the low 32 bits.
func readMoney(val []byte) int64 {
	expectSize(val, moneySize)
	hi := int64(readInt32(val[:int32Size]))
	lo := int64(readUint32(val[int32Size:]))
	return hi<<32 | lo
}

func writeUint8(buf []byte, val uint8) {
	expectSize(buf, byteSize)
	buf[0] = val
}

func writeUint16(buf []byte, val uint16) {
	expectSize(buf, int16Size)
	binary.LittleEndian.PutUint16(buf, val)
}

func writeInt16(buf []byte, val int16) {
	expectSize(buf, int16Size)
	binary.LittleEndian.PutUint16(buf, uint16(val))
}

func writeUint32(buf []byte, val uint32) {
	expectSize(buf, int32Size)
	binary.LittleEndian.PutUint32(buf, val)
}

func writeInt32(buf []byte, val int32) {
	expectSize(buf, int32Size)
	binary.LittleEndian.PutUint32(buf, uint32(val))
}

func writeInt64(buf []byte, val int64) {
	expectSize(buf, int64Size)
	binary.LittleEndian.PutUint64(buf, uint64(val))
}

func writeFloat32(buf []byte, val float32) {
	expectSize(buf, float32Size)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(val))
}

func writeFloat64(buf []byte, val float64) {
	expectSize(buf, float64Size)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(val))
}

func writeMoney(buf []byte, val int64) {
	expectSize(buf, moneySize)
	writeInt32(buf[:int32Size], int32(val>>32))
	writeUint32(buf[int32Size:], uint32(val))
}
