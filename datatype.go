package rct

import "fmt"

/*
DataType describes the payload encoding of an OID.

The type is not transmitted on the wire; both sides know it from the OID
catalog. All numeric types are big-endian.

  | DataType             | Wire form                                  |
  | Bool                 | 1 byte, 0x00 or 0x01                       |
  | Uint8 / Int8 / Enum  | 1 byte                                     |
  | Uint16 / Int16       | 2 bytes                                    |
  | Uint32 / Int32       | 4 bytes                                    |
  | Float                | 4 bytes, IEEE-754 single                   |
  | String               | ASCII bytes, NUL-terminated                |
  | TimeSeries           | uint32 ts + n * (uint32 ts, float value)   |
  | EventTable           | uint32 ts + n * 5 uint32 elements          |
  | Unknown              | opaque bytes                               |
*/
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeBool
	DataTypeUint8
	DataTypeInt8
	DataTypeUint16
	DataTypeInt16
	DataTypeUint32
	DataTypeInt32
	DataTypeEnum
	DataTypeFloat
	DataTypeString
	DataTypeTimeSeries
	DataTypeEventTable
)

func (d DataType) String() string {
	switch d {
	case DataTypeUnknown:
		return "UNKNOWN"
	case DataTypeBool:
		return "BOOL"
	case DataTypeUint8:
		return "UINT8"
	case DataTypeInt8:
		return "INT8"
	case DataTypeUint16:
		return "UINT16"
	case DataTypeInt16:
		return "INT16"
	case DataTypeUint32:
		return "UINT32"
	case DataTypeInt32:
		return "INT32"
	case DataTypeEnum:
		return "ENUM"
	case DataTypeFloat:
		return "FLOAT"
	case DataTypeString:
		return "STRING"
	case DataTypeTimeSeries:
		return "TIMESERIES"
	case DataTypeEventTable:
		return "EVENT_TABLE"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(d))
	}
}
