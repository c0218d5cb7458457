package capacitors

import (
	"errors"
	"fmt"
)

// ErrorKind is the reason a decode failed. Kinds are errors themselves, so
// field parsers return them bare and callers test with errors.Is.
type ErrorKind uint8

const (
	UnknownSeries ErrorKind = iota + 1
	InsufficientData
	WrongDimensionCode
	WrongHeightCode
	WrongDielectricCode
	WrongVoltageCode
	WrongCapacitanceCode
	WrongToleranceCode
)

var errorKindNames = map[ErrorKind]string{
	UnknownSeries:        "unknown series",
	InsufficientData:     "insufficient data",
	WrongDimensionCode:   "wrong dimension code",
	WrongHeightCode:      "wrong height code",
	WrongDielectricCode:  "wrong dielectric code",
	WrongVoltageCode:     "wrong voltage code",
	WrongCapacitanceCode: "wrong capacitance code",
	WrongToleranceCode:   "wrong tolerance code",
}

func AllErrorKinds() []ErrorKind {
	return []ErrorKind{
		UnknownSeries,
		InsufficientData,
		WrongDimensionCode,
		WrongHeightCode,
		WrongDielectricCode,
		WrongVoltageCode,
		WrongCapacitanceCode,
		WrongToleranceCode,
	}
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string { return k.String() }

// DecodeError locates a failure within a part number. Offset and Code are
// the position and text of the offending field when there is one.
type DecodeError struct {
	Kind         ErrorKind
	Manufacturer string
	PartNumber   string
	Offset       int
	Code         string
}

func (e *DecodeError) Error() string {
	msg := e.Kind.String()
	if e.Code != "" {
		msg = fmt.Sprintf("%s %q at offset %d", msg, e.Code, e.Offset)
	}
	if e.Manufacturer != "" {
		msg = e.Manufacturer + ": " + msg
	}
	return fmt.Sprintf("%s in %q", msg, e.PartNumber)
}

func (e *DecodeError) Unwrap() error { return e.Kind }

// KindOf returns the kind behind err, if err came from a decoder.
func KindOf(err error) (ErrorKind, bool) {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}

// FieldError wraps a bare kind from a field parser with its position.
// A non-kind error is returned unchanged.
func FieldError(manufacturer, partNumber string, offset int, code string, err error) error {
	kind, ok := KindOf(err)
	if !ok {
		return err
	}
	return &DecodeError{
		Kind:         kind,
		Manufacturer: manufacturer,
		PartNumber:   partNumber,
		Offset:       offset,
		Code:         code,
	}
}
