package lzma

import (
	"errors"
	"fmt"
)

// minLC and maxLC define the range for LC values.
const (
	minLC = 0
	maxLC = 8
)

// minLP and maxLP define the range for LP values.
const (
	minLP = 0
	maxLP = 4
)

// maximum and minimum values for the LZMA properties.
const (
	minPB = 0
	maxPB = 4
)

// maxPropertiesCode is the largest valid properties byte.
const maxPropertiesCode = (maxPB+1)*(maxLP+1)*(maxLC+1) - 1

// Properties are the literal context bits, literal position bits and
// position bits of an LZMA1 stream. They travel as a single packed byte
// in the legacy header.
type Properties struct {
	LC, LP, PB int
}

// DefaultProperties is lc=3, lp=0, pb=2, the byte 0x5D.
var DefaultProperties = Properties{LC: 3, LP: 0, PB: 2}

// PropertiesFromByte unpacks a properties byte.
func PropertiesFromByte(b byte) (Properties, error) {
	if b > maxPropertiesCode {
		return Properties{}, fmt.Errorf("lzma: invalid properties byte %#02x", b)
	}
	x := int(b)
	var p Properties
	p.LC = x % 9
	x /= 9
	p.LP = x % 5
	p.PB = x / 5
	return p, nil
}

func (p *Properties) verify() error {
	if p == nil {
		return errors.New("lzma: properties are nil")
	}
	if p.LC < minLC || p.LC > maxLC {
		return errors.New("lzma: lc out of range")
	}
	if p.LP < minLP || p.LP > maxLP {
		return errors.New("lzma: lp out of range")
	}
	if p.PB < minPB || p.PB > maxPB {
		return errors.New("lzma: pb out of range")
	}
	return nil
}

func (p Properties) ToByte() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

func (p Properties) String() string {
	return fmt.Sprintf("lc=%d lp=%d pb=%d", p.LC, p.LP, p.PB)
}
