// Package shortcut encodes and decodes Windows Shell Link (.lnk) files
// down to the (target path, arguments) pair the autostart providers need.
package shortcut

// Codec converts between shortcut file bytes and a launch command.
type Codec interface {
	// Encode produces the bytes of a shortcut launching target with the
	// given argument string.
	Encode(target, args string) ([]byte, error)

	// Decode extracts the target path and argument string from shortcut
	// bytes. Data that is not a shell link fails; a link without a
	// resolvable local path yields an empty target.
	Decode(data []byte) (target, args string, err error)
}
