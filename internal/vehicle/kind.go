package vehicle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind = errors.New("unknown vehicle kind")
	ErrInvalidSize = errors.New("invalid vehicle size")
)

// Kind names one of the vehicle variants.
type Kind string

const (
	KindBicycle    Kind = "bicycle"
	KindCar        Kind = "car"
	KindBoosterCar Kind = "booster-car"
)

// DefaultSize is used when an entry omits the size.
const DefaultSize = 10

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBicycle, KindCar, KindBoosterCar}
}

// New builds the variant for kind.
func New(kind Kind, size int) (Rider, error) {
	switch kind {
	case KindBicycle:
		return Bicycle{Size: size}, nil
	case KindCar:
		return Car{Size: size}, nil
	case KindBoosterCar:
		return BoosterCar{Size: size}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Parse reads a "kind[:size]" entry such as "car:12" or "bicycle".
func Parse(s string) (Rider, error) {
	name, sizeText, hasSize := strings.Cut(strings.TrimSpace(s), ":")
	size := DefaultSize
	if hasSize {
		n, err := strconv.Atoi(sizeText)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSize, sizeText)
		}
		size = n
	}
	return New(Kind(strings.ToLower(name)), size)
}

// ParseList reads a comma separated list of entries. Empty entries are skipped.
func ParseList(list string) ([]Rider, error) {
	var out []Rider
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		r, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
