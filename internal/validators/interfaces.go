// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks project edits before they are sent to the
// remote store.
//
// [ProjectValidator] enforces the rules of the edit form: a name of at
// least three characters, a non-blank description and a positive budget.
// The terminal UI validates the whole form on submit. Validation can be
// restricted to [FieldName], [FieldDescription] or [FieldBudget].
// Every violated rule is reported; the error text is shown to the user.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	// Validate returns nil when obj is valid. With fields, only those fields
	// are checked.
	Validate(ctx context.Context, obj any, fields ...string) error
}
