package frame

import (
	"hash/crc32"

	"github.com/twmb/murmur3"
)

type ChecksumType byte

const (
	UnknownChecksum ChecksumType = iota
	CRC32Checksum
	Murmur3Checksum
)

type checksumer struct {
	ct            ChecksumType
	auxiliaryByte [1]byte
}

type IChecksum interface {
	Checksum(block []byte, auxiliary byte) uint32
}

func (c checksumer) Checksum(block []byte, auxiliary byte) uint32 {
	var checksum uint32
	c.auxiliaryByte[0] = auxiliary
	switch c.ct {
	case CRC32Checksum:
		checksum = crc32.ChecksumIEEE(block)
		checksum = crc32.Update(checksum, crc32.IEEETable, c.auxiliaryByte[:])
	case Murmur3Checksum:
		h := murmur3.New32()
		_, _ = h.Write(block)
		_, _ = h.Write(c.auxiliaryByte[:])
		checksum = h.Sum32()
	default:
		panic("unknown checksum type")
	}

	return checksum
}

func NewChecksumer(ct ChecksumType) IChecksum {
	return &checksumer{
		ct: ct,
	}
}

var _ IChecksum = (*checksumer)(nil)
