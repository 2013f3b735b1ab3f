// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/project-pilot/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [ProjectValidator.Validate] to restrict
// validation to a subset of the project.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldBudget      = "Budget"
)

var fieldErrors = map[string]error{
	FieldName:        ErrInvalidName,
	FieldDescription: ErrEmptyDescription,
	FieldBudget:      ErrInvalidBudget,
}

// ProjectValidator checks the user-editable fields of [models.Project]
// using the `validate` struct tags.
type ProjectValidator struct {
	validate *validator.Validate
}

func NewProjectValidator() Validator {
	return &ProjectValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks a models.Project (or a pointer to one). With fields only
// those fields are checked. All violations are returned joined, in field
// order Name, Description, Budget.
func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var project models.Project
	switch value := obj.(type) {
	case models.Project:
		project = value
	case *models.Project:
		if value == nil {
			return ErrUnsupportedType
		}
		project = *value
	default:
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, ok := fieldErrors[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, project, fields...)
	} else {
		err = v.validate.StructCtx(ctx, project)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, fe := range validationErrors {
		failed[fe.StructField()] = true
	}

	var errs []error
	for _, name := range []string{FieldName, FieldDescription, FieldBudget} {
		if failed[name] {
			errs = append(errs, fieldErrors[name])
		}
	}

	return errors.Join(errs...)
}
