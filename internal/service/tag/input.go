package tag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// CreateTagInput holds the parameters for creating a tag.
type CreateTagInput struct {
	Name string
}

// Validate checks the trimmed name length.
func (i CreateTagInput) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(i.Name))
	if n < 1 || n > domain.MaxTagNameLength {
		return domain.NewValidationError("name", fmt.Sprintf("Tag name must be 1-%d characters", domain.MaxTagNameLength))
	}
	return nil
}

// ListTagsInput holds pagination for listing tags.
type ListTagsInput struct {
	Limit  int // 0 = default
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListTagsInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
