package matching

import (
	"net/http"

	"github.com/devhire/matchbox/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCH")

// Error codes
var (
	CodeProfileNotMatchable = ErrRegistry.Register("PROFILE_NOT_MATCHABLE", errx.TypeBusiness, http.StatusBadRequest, "Profile has no data to match against")
	CodeBatchFailed         = ErrRegistry.Register("BATCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Batch matching run failed")
)

// Helper functions
func ErrProfileNotMatchable() *errx.Error {
	return ErrRegistry.New(CodeProfileNotMatchable)
}

func ErrBatchFailed() *errx.Error {
	return ErrRegistry.New(CodeBatchFailed)
}
