package profile

import (
	"net/http"

	"github.com/devhire/matchbox/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("PROFILE")

// Error codes
var (
	CodeProfileNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Profile not found")
	CodeProfileAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Profile already exists")
	CodeInvalidProfileData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid profile data")
	CodeProfileIncomplete    = ErrRegistry.Register("INCOMPLETE", errx.TypeBusiness, http.StatusBadRequest, "Profile is missing the data required for matching")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrProfileAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeProfileAlreadyExists)
}

func ErrInvalidProfileData() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfileData)
}

func ErrProfileIncomplete() *errx.Error {
	return ErrRegistry.New(CodeProfileIncomplete)
}
