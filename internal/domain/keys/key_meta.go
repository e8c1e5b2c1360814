package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyMeta describes one key record written by the key generation workflow.
// The private exponent itself is never part of the metadata, only the path of its record.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Type            string    `validate:"required,oneof=public private"`
	ModulusDigits   int       `validate:"required,min=1"`
	Exponent        string    `validate:"required_if=Type public,omitempty,numeric"`
	FilePath        string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	return validateStruct(k)
}

// KeyQuery filters and pages registry listings
type KeyQuery struct {
	Type      string    `validate:"omitempty,oneof=public private"`
	KeyPairID string    `validate:"omitempty,uuid4"`
	CreatedAt time.Time `validate:"omitempty"`

	// Pagination properties
	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`

	// Sorting properties
	SortBy    string `validate:"omitempty,oneof=date_time_created type key_pair_id"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery creates a KeyQuery with default values
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{
		Limit:     50,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
