package commands

import (
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/errs"
)

var (
	ErrConcurrentModification = errs.Mark(errs.New("record was modified by another request, reload and retry"), errs.ErrConcurrentModification)
	ErrEventEncoding          = errs.New("failed to encode outbox event")
)

// translateRepoErr maps repository kinds onto the caller's sentinels.
func translateRepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindStaleVersion):
		return ErrConcurrentModification
	default:
		return err
	}
}

func translateDuplicate(err error, duplicate error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return duplicate
	}
	return err
}
