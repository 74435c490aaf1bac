package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("supported_document", validateDocumentType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Identity documents are accepted as PDF or image scans.
func validateDocumentType(fl validator.FieldLevel) bool {
	mimeType := fl.Field().String()
	supportedTypes := map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
		"image/webp":      true,
	}
	return supportedTypes[mimeType]
}
