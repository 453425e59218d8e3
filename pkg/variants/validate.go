// gamedefs
// Copyright (c) 2026 The gamedefs Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of gamedefs.
//
// gamedefs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gamedefs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gamedefs.  If not, see <http://www.gnu.org/licenses/>.

package variants

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var reVariantID = regexp.MustCompile(`^[a-z0-9_]+$`)

var rowValidator = newRowValidator()

func newRowValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("variantid", validateVariantID)
	_ = v.RegisterValidation("category", validateCategory)
	return v
}

func validateVariantID(fl validator.FieldLevel) bool {
	return reVariantID.MatchString(fl.Field().String())
}

func validateCategory(fl validator.FieldLevel) bool {
	return knownCategories[Category(fl.Field().String())]
}

// validateRow returns one problem string per failed field of v.
func validateRow(v *Variant) []string {
	err := rowValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("variant %q: %v", v.ID, err)}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf(
			"variant %q: field %s fails %q (value %q)",
			v.ID, fe.Field(), fe.Tag(), fmt.Sprint(fe.Value()),
		))
	}
	return problems
}
