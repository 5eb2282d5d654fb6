// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package impact derives dashboard metrics from an idea list and the goal
// configuration. Every function is pure.
//
// Unit impacts are illustrative multipliers per approved idea, not measured
// data.
package impact

import (
	"math"
	"slices"

	"github.com/MKhiriev/eco-ideas/models"
)

// Config holds the estimated impact of one approved idea per category, in
// the category's unit.
type Config struct {
	UnitImpact map[models.Category]float64
}

// DefaultConfig returns the built-in multipliers.
func DefaultConfig() Config {
	return Config{UnitImpact: map[models.Category]float64{
		models.CategoryWater:        850,
		models.CategoryEnergy:       45,
		models.CategoryWaste:        12,
		models.CategoryTransport:    30,
		models.CategoryMaterials:    8,
		models.CategoryBiodiversity: 5,
	}}
}

// Unit returns the multiplier of c, zero when it is not configured.
func (c Config) Unit(category models.Category) float64 {
	return c.UnitImpact[category]
}

// GoalLookup resolves the target of a category for a period.
type GoalLookup interface {
	Get(category models.Category, period models.Period) float64
}

// Summary counts ideas by status.
type Summary struct {
	Total        int
	Pending      int
	Approved     int
	Rejected     int
	ApprovalRate int
}

// CategoryProgress is the progress of one category towards its goal.
type CategoryProgress struct {
	Category models.Category
	Approved int

	// Impact is Approved times the category's unit impact.
	Impact float64
	Goal   float64

	// Percent is in [0, 100].
	Percent int
}

// ApprovalRate returns round(100 * approved / total), or 0 for no ideas.
func ApprovalRate(ideas []models.Idea) int {
	if len(ideas) == 0 {
		return 0
	}
	return percent(float64(countStatus(ideas, models.StatusApproved)), float64(len(ideas)))
}

// Summarize counts ideas by status.
func Summarize(ideas []models.Idea) Summary {
	s := Summary{Total: len(ideas), ApprovalRate: ApprovalRate(ideas)}
	for _, idea := range ideas {
		switch idea.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusApproved:
			s.Approved++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// Progress returns the progress of every known category for period, in
// the order of models.Categories. A category whose goal is not positive
// has 0 percent.
func Progress(ideas []models.Idea, goals GoalLookup, period models.Period, cfg Config) []CategoryProgress {
	approved := make(map[models.Category]int, len(models.Categories))
	for _, idea := range ideas {
		if idea.Status == models.StatusApproved {
			approved[idea.Category]++
		}
	}

	out := make([]CategoryProgress, 0, len(models.Categories))
	for _, c := range models.Categories {
		p := CategoryProgress{
			Category: c,
			Approved: approved[c],
			Impact:   float64(approved[c]) * cfg.Unit(c),
			Goal:     goals.Get(c, period),
		}
		if p.Goal > 0 {
			p.Percent = min(100, percent(p.Impact, p.Goal))
		}
		out = append(out, p)
	}
	return out
}

// Overview holds the administrator's key figures.
type Overview struct {
	Summary
	ByCategory map[models.Category]int
	Recent     []models.Idea
}

// NewOverview summarizes all ideas and keeps the recent newest ones.
func NewOverview(ideas []models.Idea, recent int) Overview {
	o := Overview{
		Summary:    Summarize(ideas),
		ByCategory: make(map[models.Category]int, len(models.Categories)),
	}
	for _, idea := range ideas {
		o.ByCategory[idea.Category]++
	}

	sorted := slices.Clone(ideas)
	slices.SortStableFunc(sorted, func(a, b models.Idea) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if recent < 0 {
		recent = 0
	}
	o.Recent = sorted[:min(recent, len(sorted))]
	return o
}

// percent returns round(100 * part / whole) clamped to [0, +inf).
func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	v := math.Round(100 * part / whole)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func countStatus(ideas []models.Idea, status models.IdeaStatus) int {
	n := 0
	for _, idea := range ideas {
		if idea.Status == status {
			n++
		}
	}
	return n
}
