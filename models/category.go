// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Category identifies the sustainability area of an idea.
type Category string

const (
	CategoryWater        Category = "water"
	CategoryEnergy       Category = "energy"
	CategoryWaste        Category = "waste"
	CategoryTransport    Category = "transport"
	CategoryMaterials    Category = "materials"
	CategoryBiodiversity Category = "biodiversity"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryWater,
	CategoryEnergy,
	CategoryWaste,
	CategoryTransport,
	CategoryMaterials,
	CategoryBiodiversity,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw backend value into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: category %q", ErrUnknownValue, s)
	}
	return c, nil
}

// CategoryInfo is a row of the category registry. It is the single source of
// display labels and measurement units.
type CategoryInfo struct {
	ID          string   `json:"id"`
	Name        Category `json:"name"`
	DisplayName string   `json:"display_name"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	HasGoals    bool     `json:"has_goals"`
}

// TableName returns the name of the database table associated with
// CategoryInfo.
func (c CategoryInfo) TableName() string {
	return "categories"
}

// CategoryRegistry indexes category rows by name.
type CategoryRegistry map[Category]CategoryInfo

// NewCategoryRegistry builds a registry from the given rows.
func NewCategoryRegistry(rows []CategoryInfo) CategoryRegistry {
	reg := make(CategoryRegistry, len(rows))
	for _, row := range rows {
		reg[row.Name] = row
	}
	return reg
}

// Label returns the display name of c, or its raw name when unregistered.
func (r CategoryRegistry) Label(c Category) string {
	if info, ok := r[c]; ok && info.DisplayName != "" {
		return info.DisplayName
	}
	return string(c)
}

// Unit returns the measurement unit of c, or an empty string.
func (r CategoryRegistry) Unit(c Category) string {
	return r[c].Unit
}
