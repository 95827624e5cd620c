package validator

import (
	"banking_ledger/internal/domain"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyName         = errors.New("client name cannot be empty")
	ErrInvalidNationalID = errors.New("national id must be a CPF (000.000.000-00)")
	ErrInvalidBirthDate  = errors.New("birth date must be DD/MM/YYYY and not in the future")
)

const birthDateLayout = "02/01/2006"

type ClientValidator struct {
	cpfRegex *regexp.Regexp
	now      func() time.Time
}

func NewClientValidator() *ClientValidator {
	return &ClientValidator{
		cpfRegex: regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`),
		now:      time.Now,
	}
}

// ValidateClient reports every problem found, joined into one error.
func (v *ClientValidator) ValidateClient(c *domain.Client) error {
	var errs []error

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrEmptyName)
	}

	if !v.cpfRegex.MatchString(c.NationalID) {
		errs = append(errs, ErrInvalidNationalID)
	}

	if err := v.ValidateBirthDate(c.BirthDate); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %w", errors.Join(errs...))
	}

	return nil
}

func (v *ClientValidator) ValidateBirthDate(s string) error {
	born, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBirthDate, s)
	}
	if born.After(v.now()) {
		return fmt.Errorf("%w: %q", ErrInvalidBirthDate, s)
	}
	return nil
}
