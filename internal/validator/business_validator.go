package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/StudyFlow-2025/task-service/internal/models"
)

// registerDomainRules installs the closed-enum rules the request DTOs use.
func registerDomainRules(validate *validator.Validate) {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(validate.RegisterValidation("task_category", func(fl validator.FieldLevel) bool {
		return models.TaskCategory(fl.Field().String()).Valid()
	}))
	must(validate.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return models.Priority(fl.Field().String()).Valid()
	}))
	must(validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	}))
	must(validate.RegisterValidation("theme_option", func(fl validator.FieldLevel) bool {
		t := models.Theme(fl.Field().String())
		return t == models.ThemeLight || t == models.ThemeDark
	}))
	must(validate.RegisterValidation("font_size", func(fl validator.FieldLevel) bool {
		f := models.FontSize(fl.Field().String())
		return f == models.FontSmall || f == models.FontMedium || f == models.FontLarge
	}))
}

// BusinessValidator handles rule checks that go beyond struct tags.
type BusinessValidator struct {
	validate *validator.Validate
}

func newBusinessValidator(validate *validator.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// ValidateTaskCreate validates task creation requests.
func (bv *BusinessValidator) ValidateTaskCreate(req *TaskCreateRequest) ValidationErrors {
	var errors ValidationErrors

	if err := bv.validate.Struct(req); err != nil {
		errors = append(errors, toValidationErrors(err)...)
	}

	if req.DueDate.IsZero() {
		errors = append(errors, ValidationError{
			Field:   "due_date",
			Message: "must be a well-formed timestamp",
			Rule:    "business_logic",
		})
	}

	return errors
}

// ValidateRegister validates the self-registration request.
func (bv *BusinessValidator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	if err := bv.validate.Struct(req); err != nil {
		return toValidationErrors(err)
	}
	return nil
}

// ValidateUserCreate validates the admin account-creation request.
func (bv *BusinessValidator) ValidateUserCreate(req *UserCreateRequest) ValidationErrors {
	if err := bv.validate.Struct(req); err != nil {
		return toValidationErrors(err)
	}
	return nil
}
