package extra

import (
	"encoding/binary"
	"time"
)

// ntfsEpoch is the origin of the FILETIME scale: 100ns intervals since
// 1601-01-01 UTC.
var ntfsEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// NTFSTimes is the NTFS extra field (ID 0x000A) carrying modification,
// access and creation times at FILETIME precision. Local and central
// encodings are identical.
type NTFSTimes struct {
	MTime time.Time
	ATime time.Time
	CTime time.Time
}

func (NTFSTimes) ID() uint16 { return 0x000A }

func (t NTFSTimes) localData() []byte {
	buf := make([]byte, 0, 32)
	buf = binary.LittleEndian.AppendUint32(buf, 0) // reserved
	buf = binary.LittleEndian.AppendUint16(buf, 1) // attribute tag 1: times
	buf = binary.LittleEndian.AppendUint16(buf, 24)
	buf = binary.LittleEndian.AppendUint64(buf, filetime(t.MTime))
	buf = binary.LittleEndian.AppendUint64(buf, filetime(t.ATime))
	buf = binary.LittleEndian.AppendUint64(buf, filetime(t.CTime))
	return buf
}

func (t NTFSTimes) centralData() []byte { return t.localData() }

func filetime(t time.Time) uint64 {
	if t.Before(ntfsEpoch) {
		return 0
	}
	return uint64(t.Sub(ntfsEpoch) / 100)
}

// UnixTimestamp is the extended timestamp extra field (ID 0x5455, "UT")
// carrying unix-seconds times. Zero time values are omitted. The central
// encoding carries the modification time only.
type UnixTimestamp struct {
	MTime time.Time
	ATime time.Time
	CTime time.Time
}

func (UnixTimestamp) ID() uint16 { return 0x5455 }

const (
	utFlagMTime = 1 << 0
	utFlagATime = 1 << 1
	utFlagCTime = 1 << 2
)

func (t UnixTimestamp) flags() byte {
	var f byte
	if !t.MTime.IsZero() {
		f |= utFlagMTime
	}
	if !t.ATime.IsZero() {
		f |= utFlagATime
	}
	if !t.CTime.IsZero() {
		f |= utFlagCTime
	}
	return f
}

func (t UnixTimestamp) localData() []byte {
	buf := make([]byte, 0, 13)
	buf = append(buf, t.flags())
	if !t.MTime.IsZero() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.MTime.Unix()))
	}
	if !t.ATime.IsZero() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.ATime.Unix()))
	}
	if !t.CTime.IsZero() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.CTime.Unix()))
	}
	return buf
}

func (t UnixTimestamp) centralData() []byte {
	buf := make([]byte, 0, 5)
	buf = append(buf, t.flags())
	if !t.MTime.IsZero() {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(t.MTime.Unix()))
	}
	return buf
}
