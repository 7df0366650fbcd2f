package demo

import (
	"math"
	"time"
)

// Constants shown in the last section.
const (
	Pi      = 3.14159
	AppName = "Go Data Types Demo"
)

// Sample literals.
const (
	sampleFloat        = 3.14159265359
	sampleDecimalCoeff = 314159265359
	sampleDecimalExp   = -11
	sampleRune         = 'A'
	sampleString       = "你好，Go世界！"

	smallInt  = 100
	piValue   = 3.14159
	largeLong = 9876543210

	numberString = "123"
	floatString  = "3.14159"
	boolString   = "True"
)

// fixedDate is the constructed point in time of the date/time section,
// placed in the clock's location.
func fixedDate(loc *time.Location) time.Time {
	return time.Date(2023, time.January, 1, 12, 0, 0, 0, loc)
}

// integerSample is one row of the integer section.
type integerSample struct {
	typeName string
	value    any
	min      any
	max      any
}

func integerSamples() []integerSample {
	var (
		u8  uint8  = math.MaxUint8
		i8  int8   = math.MinInt8
		i16 int16  = math.MaxInt16
		u16 uint16 = math.MaxUint16
		i32 int32  = math.MaxInt32
		u32 uint32 = math.MaxUint32
		i64 int64  = math.MaxInt64
		u64 uint64 = math.MaxUint64
	)

	return []integerSample{
		{"uint8", u8, uint8(0), uint8(math.MaxUint8)},
		{"int8", i8, int8(math.MinInt8), int8(math.MaxInt8)},
		{"int16", i16, int16(math.MinInt16), int16(math.MaxInt16)},
		{"uint16", u16, uint16(0), uint16(math.MaxUint16)},
		{"int32", i32, int32(math.MinInt32), int32(math.MaxInt32)},
		{"uint32", u32, uint32(0), uint32(math.MaxUint32)},
		{"int64", i64, int64(math.MinInt64), int64(math.MaxInt64)},
		{"uint64", u64, uint64(0), uint64(math.MaxUint64)},
	}
}
