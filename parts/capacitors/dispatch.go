package capacitors

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Decoder decodes the part numbers of one manufacturer. Decode must return
// UnknownSeries (possibly wrapped) when the part number does not start with
// one of the manufacturer's series, and nothing else in that case.
type Decoder interface {
	Manufacturer() string
	Decode(partNumber string) (Capacitor, error)
}

// Dispatcher tries its decoders in order. A decoder that does not recognize
// the series is skipped; any other failure ends the search, because a known
// series with a malformed body is an input error.
type Dispatcher struct {
	decoders []Decoder
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger, decoders ...Decoder) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		decoders: append([]Decoder(nil), decoders...),
		logger:   logger,
	}
}

func (d *Dispatcher) Decoders() []Decoder {
	return append([]Decoder(nil), d.decoders...)
}

func (d *Dispatcher) Decode(partNumber string) (Capacitor, error) {
	for _, decoder := range d.decoders {
		capacitor, err := decoder.Decode(partNumber)
		if err == nil {
			return capacitor, nil
		}
		if !errors.Is(err, UnknownSeries) {
			return Capacitor{}, err
		}

		d.logger.Debug("series not recognized",
			zap.String("manufacturer", decoder.Manufacturer()),
			zap.String("part_number", partNumber),
		)
	}

	return Capacitor{}, &DecodeError{Kind: UnknownSeries, PartNumber: partNumber}
}

var (
	registryMu sync.RWMutex
	registry   []Decoder
)

// Register makes a decoder available to Decode. It is meant to be called
// from a manufacturer package's init; registering nil or the same
// manufacturer twice panics.
func Register(decoder Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if decoder == nil {
		panic("capacitors: Register decoder is nil")
	}
	for _, registered := range registry {
		if registered.Manufacturer() == decoder.Manufacturer() {
			panic(fmt.Sprintf("capacitors: Register called twice for %s", decoder.Manufacturer()))
		}
	}
	registry = append(registry, decoder)
}

// Decoders returns the registered decoders in registration order.
func Decoders() []Decoder {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return append([]Decoder(nil), registry...)
}

// Decode decodes partNumber with every registered decoder.
func Decode(partNumber string) (Capacitor, error) {
	return NewDispatcher(nil, Decoders()...).Decode(partNumber)
}
