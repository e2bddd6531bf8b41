package lists

import (
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfBounds       = errors.New("index out of bounds")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrIllegalState           = errors.New("illegal iterator state")
	ErrNoSuchElement          = errors.New("no such element")
	ErrUnsupported            = errors.New("unsupported operation")
)

func outOfBounds(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, size)
}

func rangeOutOfBounds(from, to, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "range [%d, %d), size %d", from, to, size)
}

func concurrentModification(expected, actual int) error {
	return errors.Wrapf(ErrConcurrentModification, "expected modification count %d, found %d", expected, actual)
}

func unsupported(op string) error {
	return errors.Wrapf(ErrUnsupported, "%s on read-only list", op)
}
