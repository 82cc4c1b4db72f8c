package extra

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func TestFieldsEncodeLocal(t *testing.T) {
	t.Parallel()

	mtime := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

	fields := Fields{
		UnixTimestamp{MTime: mtime},
		UnixOwner{UID: 1000, GID: 1000},
	}
	data, err := fields.EncodeLocal()
	if err != nil {
		t.Fatalf("EncodeLocal() unexpected error: %v", err)
	}

	// UT header: ID 0x5455, length 5, flags 0x01, mtime.
	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0x5455 {
		t.Errorf("first field ID = %#x, want 0x5455", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 5 {
		t.Errorf("UT field length = %d, want 5", got)
	}
	if data[4] != utFlagMTime {
		t.Errorf("UT flags = %#x, want %#x", data[4], utFlagMTime)
	}
	if got := binary.LittleEndian.Uint32(data[5:9]); got != uint32(mtime.Unix()) {
		t.Errorf("UT mtime = %d, want %d", got, mtime.Unix())
	}

	// ux header: ID 0x7875, length 11, version 1, 4-byte uid/gid.
	ux := data[9:]
	if got := binary.LittleEndian.Uint16(ux[0:2]); got != 0x7875 {
		t.Errorf("second field ID = %#x, want 0x7875", got)
	}
	if got := binary.LittleEndian.Uint16(ux[2:4]); got != 11 {
		t.Errorf("ux field length = %d, want 11", got)
	}
	if ux[4] != 1 || ux[5] != 4 {
		t.Errorf("ux version/uid size = %d/%d, want 1/4", ux[4], ux[5])
	}
	if got := binary.LittleEndian.Uint32(ux[6:10]); got != 1000 {
		t.Errorf("ux uid = %d, want 1000", got)
	}
	if ux[10] != 4 {
		t.Errorf("ux gid size = %d, want 4", ux[10])
	}
	if got := binary.LittleEndian.Uint32(ux[11:15]); got != 1000 {
		t.Errorf("ux gid = %d, want 1000", got)
	}
}

func TestUnixTimestampCentralEncoding(t *testing.T) {
	t.Parallel()

	mtime := time.Unix(1700000000, 0)
	atime := time.Unix(1700000100, 0)

	ts := UnixTimestamp{MTime: mtime, ATime: atime}
	local := ts.localData()
	central := ts.centralData()

	if len(local) != 9 {
		t.Errorf("local UT length = %d, want 9 (flags + mtime + atime)", len(local))
	}
	if len(central) != 5 {
		t.Errorf("central UT length = %d, want 5 (flags + mtime only)", len(central))
	}
	if local[0] != central[0] {
		t.Errorf("flags differ between encodings: %#x vs %#x", local[0], central[0])
	}
	if got := binary.LittleEndian.Uint32(central[1:5]); got != uint32(mtime.Unix()) {
		t.Errorf("central mtime = %d, want %d", got, mtime.Unix())
	}
}

func TestNTFSTimesEncoding(t *testing.T) {
	t.Parallel()

	mtime := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)
	nt := NTFSTimes{MTime: mtime, ATime: mtime, CTime: mtime}

	data := nt.localData()
	if len(data) != 32 {
		t.Fatalf("NTFS field length = %d, want 32", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[0:4]); got != 0 {
		t.Errorf("reserved = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 1 {
		t.Errorf("attribute tag = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(data[6:8]); got != 24 {
		t.Errorf("attribute size = %d, want 24", got)
	}

	want := uint64(mtime.Sub(ntfsEpoch) / 100)
	if got := binary.LittleEndian.Uint64(data[8:16]); got != want {
		t.Errorf("mtime FILETIME = %d, want %d", got, want)
	}
	if !bytes.Equal(nt.localData(), nt.centralData()) {
		t.Error("NTFS local and central encodings differ")
	}
}

func TestFieldsMerge(t *testing.T) {
	t.Parallel()

	a := Fields{UnixOwner{UID: 1}, UnixOwner{UID: 2}}
	b := Fields{UnixOwner{UID: 3}, UnixOwner{UID: 1}}

	merged := a.Merge(b)
	if len(merged) != 4 {
		t.Fatalf("merged length = %d, want 4", len(merged))
	}
	wantUIDs := []uint32{1, 2, 3, 1}
	for i, f := range merged {
		owner, ok := f.(UnixOwner)
		if !ok {
			t.Fatalf("merged[%d] is %T, want UnixOwner", i, f)
		}
		if owner.UID != wantUIDs[i] {
			t.Errorf("merged[%d].UID = %d, want %d", i, owner.UID, wantUIDs[i])
		}
	}
}

func TestFieldsEncodeEmpty(t *testing.T) {
	t.Parallel()

	data, err := Fields(nil).EncodeLocal()
	if err != nil {
		t.Fatalf("EncodeLocal() unexpected error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("empty fields encoded to %d bytes, want 0", len(data))
	}
}
