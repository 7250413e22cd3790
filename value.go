package rct

import (
	"fmt"
	"math"
	"strings"
)

/*
EncodeValue converts a host value into the wire form of the given data type.

Accepted value kinds per type:
  - DataTypeBool: bool
  - DataTypeUint8, DataTypeEnum: uint8 or int
  - DataTypeInt8: int8 or int
  - DataTypeUint16: uint16 or int
  - DataTypeInt16: int16 or int
  - DataTypeUint32: uint32 or int
  - DataTypeInt32: int32 or int
  - DataTypeFloat: float32 or float64
  - DataTypeString: string (ASCII, no interior NUL)
  - DataTypeTimeSeries, DataTypeEventTable: uint32 request timestamp; the
    device answers a timestamp write with the table contents, encoding a
    full table is not supported
  - DataTypeUnknown: []byte, passed through unchanged

`int` convenience values are range-checked against the target type.
*/
func EncodeValue(dt DataType, value interface{}) ([]byte, error) {
	switch dt {
	case DataTypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, encodeTypeErr(dt, value)
		}
		if b {
			return []byte{0x01}, nil
		}
		return []byte{0x00}, nil

	case DataTypeUint8, DataTypeEnum:
		v, err := encodeInt(dt, value, 0, math.MaxUint8)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v)}, nil

	case DataTypeInt8:
		v, err := encodeInt(dt, value, math.MinInt8, math.MaxInt8)
		if err != nil {
			return nil, err
		}
		return []byte{byte(int8(v))}, nil

	case DataTypeUint16:
		v, err := encodeInt(dt, value, 0, math.MaxUint16)
		if err != nil {
			return nil, err
		}
		return serializeBigEndianUint16(uint16(v)), nil

	case DataTypeInt16:
		v, err := encodeInt(dt, value, math.MinInt16, math.MaxInt16)
		if err != nil {
			return nil, err
		}
		return serializeBigEndianUint16(uint16(int16(v))), nil

	case DataTypeUint32:
		v, err := encodeInt(dt, value, 0, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return serializeBigEndianUint32(uint32(v)), nil

	case DataTypeInt32:
		v, err := encodeInt(dt, value, math.MinInt32, math.MaxInt32)
		if err != nil {
			return nil, err
		}
		return serializeBigEndianUint32(uint32(int32(v))), nil

	case DataTypeFloat:
		var f float32
		switch v := value.(type) {
		case float32:
			f = v
		case float64:
			f = float32(v)
		default:
			return nil, encodeTypeErr(dt, value)
		}
		return serializeBigEndianUint32(math.Float32bits(f)), nil

	case DataTypeString:
		s, ok := value.(string)
		if !ok {
			return nil, encodeTypeErr(dt, value)
		}
		for _, r := range s {
			if r == 0 {
				return nil, &EncodeError{Type: dt, Reason: "string contains NUL"}
			}
			if r > 0x7F {
				return nil, &EncodeError{Type: dt, Reason: "string is not ASCII"}
			}
		}
		return append([]byte(s), 0x00), nil

	case DataTypeTimeSeries, DataTypeEventTable:
		// Only the request timestamp form is encodable.
		v, err := encodeInt(dt, value, 0, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		return serializeBigEndianUint32(uint32(v)), nil

	case DataTypeUnknown:
		b, ok := value.([]byte)
		if !ok {
			return nil, encodeTypeErr(dt, value)
		}
		return b, nil
	}
	return nil, &EncodeError{Type: dt, Reason: "unhandled data type"}
}

func encodeInt(dt DataType, value interface{}, min, max int64) (int64, error) {
	var v int64
	switch x := value.(type) {
	case int:
		v = int64(x)
	case int8:
		v = int64(x)
	case int16:
		v = int64(x)
	case int32:
		v = int64(x)
	case uint8:
		v = int64(x)
	case uint16:
		v = int64(x)
	case uint32:
		v = int64(x)
	default:
		return 0, encodeTypeErr(dt, value)
	}
	if v < min || v > max {
		return 0, &EncodeError{Type: dt, Reason: "value out of range"}
	}
	return v, nil
}

func encodeTypeErr(dt DataType, value interface{}) *EncodeError {
	return &EncodeError{Type: dt, Reason: fmt.Sprintf("unsupported value type %T", value)}
}

/*
DecodeValue converts wire bytes into the host value of the given data type.

Returned kinds mirror EncodeValue: bool, uint8 (also for ENUM), int8,
uint16, int16, uint32, int32, float32, string, *TimeSeriesData,
*EventTableData, or []byte for UNKNOWN.

Strings decode up to the first NUL; devices sometimes omit the terminator
and sometimes leave garbage after it, both are tolerated.
*/
func DecodeValue(dt DataType, data []byte) (interface{}, error) {
	switch dt {
	case DataTypeBool:
		if len(data) != 1 {
			return nil, decodeLenErr(dt, len(data))
		}
		return data[0] != 0x00, nil

	case DataTypeUint8, DataTypeEnum:
		if len(data) != 1 {
			return nil, decodeLenErr(dt, len(data))
		}
		return data[0], nil

	case DataTypeInt8:
		if len(data) != 1 {
			return nil, decodeLenErr(dt, len(data))
		}
		return int8(data[0]), nil

	case DataTypeUint16:
		if len(data) != 2 {
			return nil, decodeLenErr(dt, len(data))
		}
		return parseBigEndianUint16(data), nil

	case DataTypeInt16:
		if len(data) != 2 {
			return nil, decodeLenErr(dt, len(data))
		}
		return parseBigEndianInt16(data), nil

	case DataTypeUint32:
		if len(data) != 4 {
			return nil, decodeLenErr(dt, len(data))
		}
		return parseBigEndianUint32(data), nil

	case DataTypeInt32:
		if len(data) != 4 {
			return nil, decodeLenErr(dt, len(data))
		}
		return parseBigEndianInt32(data), nil

	case DataTypeFloat:
		if len(data) != 4 {
			return nil, decodeLenErr(dt, len(data))
		}
		return math.Float32frombits(parseBigEndianUint32(data)), nil

	case DataTypeString:
		s := string(data)
		if i := strings.IndexByte(s, 0x00); i >= 0 {
			s = s[:i]
		}
		return s, nil

	case DataTypeTimeSeries:
		return decodeTimeSeries(data)

	case DataTypeEventTable:
		return decodeEventTable(data)

	case DataTypeUnknown:
		return data, nil
	}
	return nil, &DecodeError{Type: dt, Reason: "unhandled data type"}
}

func decodeLenErr(dt DataType, n int) *DecodeError {
	return &DecodeError{Type: dt, Reason: fmt.Sprintf("unexpected payload length %d", n)}
}

func decodeTimeSeries(data []byte) (*TimeSeriesData, error) {
	if len(data) < 4 || len(data)%4 != 0 || (len(data)/4)%2 != 1 {
		return nil, decodeLenErr(DataTypeTimeSeries, len(data))
	}
	ts := &TimeSeriesData{
		RequestTimestamp: parseBigEndianUint32(data[:4]),
	}
	for off := 4; off < len(data); off += 8 {
		ts.Entries = append(ts.Entries, TimeSeriesEntry{
			Timestamp: parseBigEndianUint32(data[off : off+4]),
			Value:     math.Float32frombits(parseBigEndianUint32(data[off+4 : off+8])),
		})
	}
	return ts, nil
}

func decodeEventTable(data []byte) (*EventTableData, error) {
	if len(data) < 4 || len(data)%4 != 0 || (len(data)/4-1)%5 != 0 {
		return nil, decodeLenErr(DataTypeEventTable, len(data))
	}
	et := &EventTableData{
		RequestTimestamp: parseBigEndianUint32(data[:4]),
	}
	for off := 4; off < len(data); off += 20 {
		et.Events = append(et.Events, EventEntry{
			Marker:   parseBigEndianUint32(data[off : off+4]),
			Element2: parseBigEndianUint32(data[off+4 : off+8]),
			Element3: parseBigEndianUint32(data[off+8 : off+12]),
			Element4: parseBigEndianUint32(data[off+12 : off+16]),
			Element5: parseBigEndianUint32(data[off+16 : off+20]),
		})
	}
	return et, nil
}
