package location

import (
	"errors"
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	MinBarcodeLength = 8
	MaxBarcodeLength = 20

	suffixLength = 2
	padding      = '0'
)

var (
	ErrBarcodeIsNotConstructed = errors.New("Barcode must be created via NewBarcode or GenerateBarcode")

	barcodePattern = regexp.MustCompile(`^[A-Z0-9]{8,20}$`)
)

// Barcode is the scannable, tenant-unique identifier printed on a location.
// It is always 8 to 20 upper-case ASCII letters or digits.
type Barcode struct {
	value string
	guard guard.ConstructorGuard
}

// NewBarcode trims and upper-cases a supplied barcode and validates it.
func NewBarcode(raw string) (Barcode, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if !barcodePattern.MatchString(value) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
			"barcode",
			fmt.Errorf("%q must be %d-%d upper-case letters or digits", value, MinBarcodeLength, MaxBarcodeLength),
		)
	}
	return Barcode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// GenerateBarcode derives a barcode from coordinates.
//
// Numeric components are zero-padded to two digits and the four components are
// concatenated in zone, aisle, rack, level order. When the result does not fit,
// characters are cut from the end: the level goes first, then the rack, then
// the aisle, and the zone last. A non-empty seed appends a two character
// base-36 suffix taken from the seed's FNV-1a hash. Short results are
// right-padded with '0'.
//
// The output depends only on the coordinates and the seed.
func GenerateBarcode(c Coordinates, seed string) (Barcode, error) {
	if err := c.Validate(); err != nil {
		return Barcode{}, err
	}

	parts := []string{
		padNumeric(c.zone),
		padNumeric(c.aisle),
		padNumeric(c.rack),
		padNumeric(c.level),
	}

	return compose(parts, seed)
}

// GenerateBarcodeFromCode derives a barcode for a hierarchy-only location that
// has a code but no coordinates. The same length, suffix and padding rules
// apply as for GenerateBarcode.
func GenerateBarcodeFromCode(code, seed string) (Barcode, error) {
	value := sanitize(code)
	if value == "" {
		return Barcode{}, errs.NewValueIsRequiredError("code")
	}
	return compose([]string{value}, seed)
}

func compose(parts []string, seed string) (Barcode, error) {
	limit := MaxBarcodeLength
	if seed != "" {
		limit -= suffixLength
	}

	value := strings.Join(truncate(parts, limit), "")
	if seed != "" {
		value += suffix(seed)
	}
	if len(value) < MinBarcodeLength {
		value += strings.Repeat(string(padding), MinBarcodeLength-len(value))
	}

	return NewBarcode(value)
}

// truncate shortens parts from the last one backwards until their total
// length fits limit. A part that would be cut entirely is dropped.
func truncate(parts []string, limit int) []string {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := append([]string(nil), parts...)
	for i := len(out) - 1; i >= 0 && total > limit; i-- {
		excess := total - limit
		if len(out[i]) <= excess {
			total -= len(out[i])
			out[i] = ""
			continue
		}
		out[i] = out[i][:len(out[i])-excess]
		total = limit
	}
	return out
}

func padNumeric(component string) string {
	n, err := strconv.Atoi(component)
	if err != nil {
		return component
	}
	return fmt.Sprintf("%02d", n)
}

func suffix(seed string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))

	s := strings.ToUpper(strconv.FormatUint(uint64(h.Sum32()%(36*36)), 36))
	if len(s) < suffixLength {
		s = strings.Repeat(string(padding), suffixLength-len(s)) + s
	}
	return s
}

func (b Barcode) String() string {
	return b.value
}

func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}
