package extra

import "encoding/binary"

// UnixOwner is the Info-ZIP unix ownership extra field (ID 0x7875, "ux"),
// version 1, with 32-bit UID and GID. Local and central encodings are
// identical.
type UnixOwner struct {
	UID uint32
	GID uint32
}

func (UnixOwner) ID() uint16 { return 0x7875 }

func (o UnixOwner) localData() []byte {
	buf := make([]byte, 0, 11)
	buf = append(buf, 1) // version
	buf = append(buf, 4) // uid size
	buf = binary.LittleEndian.AppendUint32(buf, o.UID)
	buf = append(buf, 4) // gid size
	buf = binary.LittleEndian.AppendUint32(buf, o.GID)
	return buf
}

func (o UnixOwner) centralData() []byte { return o.localData() }
