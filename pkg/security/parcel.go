package security

import "encoding/binary"

// Parcel form of a Config, used to hand the value across a process
// boundary. Field order is fixed: pmk, passphrase, pmkId, cipherSuite.
// The three optional fields are length-prefixed with a 4-byte
// little-endian signed length; nullLength marks an absent field, which
// is distinct from a present zero-length one. The cipher suite is a
// 4-byte little-endian signed integer.

// nullLength is the length prefix marking an absent optional field.
const nullLength int32 = -1

// lengthPrefixSize is the size of a field length prefix in bytes.
const lengthPrefixSize = 4

// Size returns the encoded size of the config in bytes.
func (c *Config) Size() int {
	size := 3*lengthPrefixSize + 4 // three prefixes + cipher suite
	size += len(c.pmk)
	if c.passphraseSet {
		size += len(c.passphrase)
	}
	size += len(c.pmkId)
	return size
}

// Encode serializes the config to its parcel form.
func (c *Config) Encode() []byte {
	buf := make([]byte, c.Size())
	c.EncodeTo(buf)
	return buf
}

// EncodeTo serializes the config into the provided buffer, which must
// be at least Size() bytes long. Returns the number of bytes written.
func (c *Config) EncodeTo(buf []byte) int {
	offset := putBytesField(buf, 0, c.pmk)

	if c.passphraseSet {
		offset = putBytesField(buf, offset, []byte(c.passphrase))
	} else {
		offset = putBytesField(buf, offset, nil)
	}

	offset = putBytesField(buf, offset, c.pmkId)

	binary.LittleEndian.PutUint32(buf[offset:], uint32(c.cipherSuite))
	offset += 4

	return offset
}

// Decode deserializes a config from its parcel form. It returns the
// decoded config and the number of bytes consumed.
//
// Decode checks only the framing, not the security invariant: the
// decoded cipher suite may be unrecognized and the credential fields
// inconsistent. Callers must check IsValid on configs from untrusted
// sources.
func Decode(data []byte) (*Config, int, error) {
	pmk, offset, err := readBytesField(data, 0)
	if err != nil {
		return nil, 0, err
	}

	passphraseBytes, offset, err := readBytesField(data, offset)
	if err != nil {
		return nil, 0, err
	}

	pmkId, offset, err := readBytesField(data, offset)
	if err != nil {
		return nil, 0, err
	}

	if len(data)-offset < 4 {
		return nil, 0, ErrParcelTooShort
	}
	cipherSuite := CipherSuite(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4

	cfg := &Config{
		cipherSuite: cipherSuite,
		pmk:         pmk,
		pmkId:       pmkId,
	}
	if passphraseBytes != nil {
		cfg.passphrase = string(passphraseBytes)
		cfg.passphraseSet = true
	}
	return cfg, offset, nil
}

// putBytesField writes a length-prefixed optional byte field at offset
// and returns the new offset. A nil slice is written as nullLength with
// no payload.
func putBytesField(buf []byte, offset int, field []byte) int {
	if field == nil {
		length := nullLength
		binary.LittleEndian.PutUint32(buf[offset:], uint32(length))
		return offset + lengthPrefixSize
	}
	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(field)))
	offset += lengthPrefixSize
	copy(buf[offset:], field)
	return offset + len(field)
}

// readBytesField reads a length-prefixed optional byte field at offset.
// It returns the field (nil for an absent one, non-nil for a present
// zero-length one) and the new offset.
func readBytesField(data []byte, offset int) ([]byte, int, error) {
	if len(data)-offset < lengthPrefixSize {
		return nil, 0, ErrParcelTooShort
	}
	length := int32(binary.LittleEndian.Uint32(data[offset:]))
	offset += lengthPrefixSize

	if length == nullLength {
		return nil, offset, nil
	}
	if length < 0 || int(length) > len(data)-offset {
		return nil, 0, ErrInvalidLengthPrefix
	}

	field := make([]byte, length)
	copy(field, data[offset:offset+int(length)])
	return field, offset + int(length), nil
}
