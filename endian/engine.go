// Package endian provides byte order utilities for binary record fields.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// Binary fields read and write their values through an engine, so the same
// record layout can describe host-native buffers (the default), or files
// produced on a machine with a different byte order.
//
// # Basic Usage
//
// Records use the host's native byte order unless told otherwise:
//
//	import "github.com/arloliu/overlay/endian"
//
//	engine := endian.GetNativeEngine()
//	conv := codec.NewBinary[int32](engine)
//
// For interchange files with a fixed byte order:
//
//	rec := record.New(record.WithByteOrder(endian.GetBigEndianEngine()))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

func detectNative() EndianEngine {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host's byte order.
func CheckEndianness() binary.ByteOrder {
	return nativeEngine
}

func IsNativeLittleEndian() bool {
	return nativeEngine == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return nativeEngine == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeEngine
}

// GetNativeEngine returns the engine matching the host's byte order.
//
// A binary field using the native engine stores exactly the bytes the host
// uses for the value in memory.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Name returns "little", "big" or "unknown" for logging.
func Name(engine EndianEngine) string {
	switch engine {
	case binary.LittleEndian:
		return "little"
	case binary.BigEndian:
		return "big"
	default:
		return "unknown"
	}
}
