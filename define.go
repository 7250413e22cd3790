package rct

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

var _lg = logrus.New()

func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

// All multi-byte quantities of the protocol are big-endian on the wire.

func serializeBigEndianUint16(i uint16) []byte {
	bytes := make([]byte, 2, 2)
	binary.BigEndian.PutUint16(bytes, i)
	return bytes
}

func parseBigEndianUint16(x []byte) uint16 {
	return binary.BigEndian.Uint16(x)
}

func parseBigEndianInt16(x []byte) int16 {
	return int16(parseBigEndianUint16(x))
}

func serializeBigEndianUint32(i uint32) []byte {
	bytes := make([]byte, 4, 4)
	binary.BigEndian.PutUint32(bytes, i)
	return bytes
}

func parseBigEndianUint32(x []byte) uint32 {
	return binary.BigEndian.Uint32(x)
}

func parseBigEndianInt32(x []byte) int32 {
	return int32(parseBigEndianUint32(x))
}
