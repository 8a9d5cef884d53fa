package scenario

import (
	"errors"
	"fmt"

	"github.com/povarna/linked-lists/internal/config"
	"github.com/povarna/linked-lists/internal/models"
)

// ErrUnsupported is returned when a variant has no such operation.
var ErrUnsupported = errors.New("operation not supported by variant")

//go:generate mockgen -source=sequence.go -destination=mocks/mock_sequence.go -package=mocks

// Sequence is the common surface every list variant is driven through
type Sequence interface {
	Push(end models.End, v int) error
	Pop(end models.End) (int, bool, error)
	Peek(end models.End) (int, bool, error)
	// Set overwrites the element at end in place.
	Set(end models.End, v int) (bool, error)
	// Hold keeps a shared view on the element at end open until ReleaseHeld.
	Hold(end models.End) error
	ReleaseHeld()
	Drain() []int
	Len() int
	Clear()
}

// SequenceFactory builds a fresh Sequence for a variant name
type SequenceFactory interface {
	New(variant string) (Sequence, error)
}

// Variants is the SequenceFactory over the packages in this module.
type Variants struct{}

func NewVariants() *Variants {
	return &Variants{}
}

func (Variants) New(variant string) (Sequence, error) {
	switch variant {
	case config.VariantDeque:
		return newDequeSeq(), nil
	case config.VariantStack:
		return newStackSeq(), nil
	case config.VariantQueue:
		return newQueueSeq(), nil
	case config.VariantPersistent:
		return newPersistentSeq(), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

func unsupported(op string, end models.End) error {
	return fmt.Errorf("%s at %s: %w", op, end, ErrUnsupported)
}
