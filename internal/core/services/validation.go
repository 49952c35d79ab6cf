package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/money_forecast_app/internal/apperrors"
	"github.com/SscSPs/money_forecast_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RecordValidator checks recurring records before they reach the projection engine.
type RecordValidator struct {
	validate *validator.Validate
}

// NewRecordValidator creates a validator with the recurrence rule checks registered.
func NewRecordValidator() *RecordValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(recurrenceRuleStructLevel, domain.RecurrenceRule{})
	return &RecordValidator{validate: v}
}

// A week-of-month anchor only means something together with a weekday.
func recurrenceRuleStructLevel(sl validator.StructLevel) {
	rule := sl.Current().Interface().(domain.RecurrenceRule)
	if rule.FrequencyWeekOfMonth != nil && rule.FrequencyDayOfWeek == nil {
		sl.ReportError(rule.FrequencyWeekOfMonth, "FrequencyWeekOfMonth", "frequencyWeekOfMonth", "required_with_day_of_week", "")
	}
}

// Validate checks one record. Failures wrap apperrors.ErrValidation.
func (v *RecordValidator) Validate(kind domain.SourceKind, id string, record any) error {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s %s: %s", apperrors.ErrValidation, kind, id, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s %s: %v", apperrors.ErrValidation, kind, id, err)
}

// ValidateAll checks every record in turn and stops at the first failure.
func ValidateAll[T any](v *RecordValidator, kind domain.SourceKind, records []T, id func(T) string) error {
	for _, record := range records {
		if err := v.Validate(kind, id(record), record); err != nil {
			return err
		}
	}
	return nil
}
