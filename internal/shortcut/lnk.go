package shortcut

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
)

// Shell link header constants, per MS-SHLLINK.
const (
	headerSize = 0x4C

	flagHasLinkTargetIDList = 0x01
	flagHasLinkInfo         = 0x02
	flagHasName             = 0x04
	flagHasRelativePath     = 0x08
	flagHasWorkingDir       = 0x10
	flagHasArguments        = 0x20
	flagHasIconLocation     = 0x40
	flagIsUnicode           = 0x80

	linkInfoHeaderLen = 28
	volumeIDFixedLen  = 16
	driveTypeFixed    = 3
	showNormal        = 1
	attrNormal        = 0x80
)

var linkCLSID = [16]byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// ErrNotShellLink is returned when decoded data lacks the shell link
// header or CLSID.
var ErrNotShellLink = errors.New("shortcut: data is not a shell link")

// LinkCodec implements Codec against the binary .lnk format directly,
// avoiding a COM round trip. Written links carry a LinkInfo block with
// the local base path plus Unicode argument string data, which is what
// the shell resolves when launching startup shortcuts.
type LinkCodec struct{}

// NewLinkCodec returns the binary shell link codec.
func NewLinkCodec() LinkCodec { return LinkCodec{} }

// Encode implements Codec.
func (LinkCodec) Encode(target, args string) ([]byte, error) {
	if target == "" {
		return nil, errors.New("shortcut: empty target")
	}

	flags := uint32(flagHasLinkInfo | flagIsUnicode)
	if args != "" {
		flags |= flagHasArguments
	}

	buf := new(bytes.Buffer)

	// ShellLinkHeader
	binary.Write(buf, binary.LittleEndian, uint32(headerSize))
	buf.Write(linkCLSID[:])
	binary.Write(buf, binary.LittleEndian, flags)
	binary.Write(buf, binary.LittleEndian, uint32(attrNormal))
	buf.Write(make([]byte, 24)) // creation/access/write times unset
	binary.Write(buf, binary.LittleEndian, uint32(0)) // file size
	binary.Write(buf, binary.LittleEndian, int32(0))  // icon index
	binary.Write(buf, binary.LittleEndian, uint32(showNormal))
	buf.Write(make([]byte, 12)) // hotkey + reserved

	writeLinkInfo(buf, target)

	if args != "" {
		writeStringData(buf, args)
	}

	return buf.Bytes(), nil
}

// Decode implements Codec.
func (LinkCodec) Decode(data []byte) (string, string, error) {
	if len(data) < headerSize {
		return "", "", ErrNotShellLink
	}
	if binary.LittleEndian.Uint32(data) != headerSize || !bytes.Equal(data[4:20], linkCLSID[:]) {
		return "", "", ErrNotShellLink
	}

	flags := binary.LittleEndian.Uint32(data[20:])
	off := headerSize

	if flags&flagHasLinkTargetIDList != 0 {
		if len(data) < off+2 {
			return "", "", fmt.Errorf("shortcut: truncated id list")
		}
		off += 2 + int(binary.LittleEndian.Uint16(data[off:]))
	}

	var target string
	if flags&flagHasLinkInfo != 0 {
		if len(data) < off+4 {
			return "", "", fmt.Errorf("shortcut: truncated link info")
		}
		size := int(binary.LittleEndian.Uint32(data[off:]))
		if size < linkInfoHeaderLen || len(data) < off+size {
			return "", "", fmt.Errorf("shortcut: malformed link info")
		}
		target = readLinkInfoPath(data[off : off+size])
		off += size
	}

	args, err := readStringData(data, off, flags)
	if err != nil {
		return "", "", err
	}
	return target, args, nil
}

func writeLinkInfo(buf *bytes.Buffer, target string) {
	path := append([]byte(target), 0)
	volumeID := volumeIDFixedLen + 1 // empty label, just its terminator

	volumeIDOffset := uint32(linkInfoHeaderLen)
	basePathOffset := volumeIDOffset + uint32(volumeID)
	suffixOffset := basePathOffset + uint32(len(path))
	size := suffixOffset + 1 // empty common path suffix

	binary.Write(buf, binary.LittleEndian, size)
	binary.Write(buf, binary.LittleEndian, uint32(linkInfoHeaderLen))
	binary.Write(buf, binary.LittleEndian, uint32(1)) // VolumeIDAndLocalBasePath
	binary.Write(buf, binary.LittleEndian, volumeIDOffset)
	binary.Write(buf, binary.LittleEndian, basePathOffset)
	binary.Write(buf, binary.LittleEndian, uint32(0)) // no network relative link
	binary.Write(buf, binary.LittleEndian, suffixOffset)

	// VolumeID
	binary.Write(buf, binary.LittleEndian, uint32(volumeID))
	binary.Write(buf, binary.LittleEndian, uint32(driveTypeFixed))
	binary.Write(buf, binary.LittleEndian, uint32(0))                // serial
	binary.Write(buf, binary.LittleEndian, uint32(volumeIDFixedLen)) // label offset
	buf.WriteByte(0)                                                 // empty label

	buf.Write(path)
	buf.WriteByte(0) // common path suffix
}

// readLinkInfoPath pulls the local base path out of one LinkInfo block.
func readLinkInfoPath(info []byte) string {
	headerLen := int(binary.LittleEndian.Uint32(info[4:]))
	liFlags := binary.LittleEndian.Uint32(info[8:])
	if liFlags&1 == 0 {
		return ""
	}

	// Header sizes of 0x24 and above add Unicode offsets; prefer those.
	if headerLen >= 0x24 && len(info) >= 0x20 {
		if uoff := int(binary.LittleEndian.Uint32(info[0x1C:])); uoff > 0 && uoff < len(info) {
			return readUTF16Z(info[uoff:])
		}
	}

	off := int(binary.LittleEndian.Uint32(info[16:]))
	if off <= 0 || off >= len(info) {
		return ""
	}
	if i := bytes.IndexByte(info[off:], 0); i >= 0 {
		return string(info[off : off+i])
	}
	return ""
}

// readStringData walks the StringData section in specification order and
// returns the arguments string when present.
func readStringData(data []byte, off int, flags uint32) (string, error) {
	unicode := flags&flagIsUnicode != 0

	skip := []uint32{flagHasName, flagHasRelativePath, flagHasWorkingDir}
	for _, f := range skip {
		if flags&f == 0 {
			continue
		}
		n, err := stringDataLen(data, off, unicode)
		if err != nil {
			return "", err
		}
		off += n
	}

	if flags&flagHasArguments == 0 {
		return "", nil
	}
	if len(data) < off+2 {
		return "", fmt.Errorf("shortcut: truncated string data")
	}
	count := int(binary.LittleEndian.Uint16(data[off:]))
	off += 2
	if unicode {
		if len(data) < off+count*2 {
			return "", fmt.Errorf("shortcut: truncated string data")
		}
		u := make([]uint16, count)
		for i := range u {
			u[i] = binary.LittleEndian.Uint16(data[off+i*2:])
		}
		return string(utf16.Decode(u)), nil
	}
	if len(data) < off+count {
		return "", fmt.Errorf("shortcut: truncated string data")
	}
	return string(data[off : off+count]), nil
}

func stringDataLen(data []byte, off int, unicode bool) (int, error) {
	if len(data) < off+2 {
		return 0, fmt.Errorf("shortcut: truncated string data")
	}
	count := int(binary.LittleEndian.Uint16(data[off:]))
	if unicode {
		count *= 2
	}
	if len(data) < off+2+count {
		return 0, fmt.Errorf("shortcut: truncated string data")
	}
	return 2 + count, nil
}

func writeStringData(buf *bytes.Buffer, s string) {
	u := utf16.Encode([]rune(s))
	binary.Write(buf, binary.LittleEndian, uint16(len(u)))
	for _, c := range u {
		binary.Write(buf, binary.LittleEndian, c)
	}
}

func readUTF16Z(b []byte) string {
	var u []uint16
	for i := 0; i+1 < len(b); i += 2 {
		c := binary.LittleEndian.Uint16(b[i:])
		if c == 0 {
			break
		}
		u = append(u, c)
	}
	return string(utf16.Decode(u))
}
