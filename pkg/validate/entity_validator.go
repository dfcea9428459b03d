package validate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Gunvolt24/dance_center/internal/domain"
	"github.com/Gunvolt24/dance_center/internal/ports"
	"github.com/go-playground/validator/v10"
)

// Проверка, что EntityValidator удовлетворяет интерфейсу ports.EntityValidator.
var _ ports.EntityValidator = (*EntityValidator)(nil)

// EntityValidator — валидация сущностей по тегам `validate`.
// Ошибки приводятся к видам domain: ErrMissingFields, ErrInvalidDayOfWeek, ErrInvalidInput.
type EntityValidator struct {
	v *validator.Validate
}

// NewEntityValidator — конструктор; регистрирует правило weekday и тип TimeOfDay.
func NewEntityValidator() *EntityValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в сообщениях — имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return domain.IsValidDayOfWeek(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register weekday validation: %v", err))
	}

	// незаданное время суток считается пустым значением
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		t, ok := field.Interface().(domain.TimeOfDay)
		if !ok || !t.Valid() {
			return nil
		}
		return t.String()
	}, domain.TimeOfDay{})

	return &EntityValidator{v: v}
}

// Validate — проверка сущности; nil и не-структуры считаются некорректным вводом.
func (ev *EntityValidator) Validate(ctx context.Context, entity any) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", domain.ErrInvalidInput)
	}
	if rv := reflect.ValueOf(entity); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return fmt.Errorf("%w: entity is nil", domain.ErrInvalidInput)
	}

	err := ev.v.StructCtx(ctx, entity)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return translate(fieldErrs)
}

// translate — сначала незаполненные поля, затем день недели, затем прочие правила.
func translate(fieldErrs validator.ValidationErrors) error {
	var missing, other []string
	dayErr := false

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "weekday":
			dayErr = true
		default:
			other = append(other, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}

	switch {
	case len(missing) > 0:
		sort.Strings(missing)
		return fmt.Errorf("%w (missing: %s)", domain.ErrMissingFields, strings.Join(missing, ", "))
	case dayErr:
		return domain.ErrInvalidDayOfWeek
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(other, "; "))
	}
}
