// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Period is the time window a goal applies to.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Periods lists every period a tracked category must have a goal for.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodMonthly
}

// Label returns the Portuguese adjective used in goal descriptions.
func (p Period) Label() string {
	switch p {
	case PeriodDaily:
		return "diária"
	case PeriodWeekly:
		return "semanal"
	case PeriodMonthly:
		return "mensal"
	}
	return string(p)
}

// DefaultGoalValue is used for categories without a dedicated default.
const DefaultGoalValue = 10

var defaultGoals = map[Category]map[Period]float64{
	CategoryWater:  {PeriodDaily: 350, PeriodWeekly: 2500, PeriodMonthly: 10000},
	CategoryEnergy: {PeriodDaily: 35, PeriodWeekly: 250, PeriodMonthly: 1000},
	CategoryWaste:  {PeriodDaily: 18, PeriodWeekly: 125, PeriodMonthly: 500},
}

// DefaultGoal returns the built-in target for (c, p).
func DefaultGoal(c Category, p Period) float64 {
	if byPeriod, ok := defaultGoals[c]; ok {
		if v, ok := byPeriod[p]; ok {
			return v
		}
	}
	return DefaultGoalValue
}

// GoalKey identifies a goal. At most one goal exists per key.
type GoalKey struct {
	Category Category `json:"category"`
	Period   Period   `json:"period"`
}

// SettingKey renders the key as stored in the settings table:
// goal_{category}_{period}.
func (k GoalKey) SettingKey() string {
	return fmt.Sprintf("goal_%s_%s", k.Category, k.Period)
}

// String implements fmt.Stringer.
func (k GoalKey) String() string {
	return k.SettingKey()
}

// ParseGoalKey parses a settings key of the form goal_{category}_{period}.
func ParseGoalKey(s string) (GoalKey, error) {
	rest, ok := strings.CutPrefix(s, "goal_")
	if !ok {
		return GoalKey{}, fmt.Errorf("%w: goal key %q", ErrUnknownValue, s)
	}
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 {
		return GoalKey{}, fmt.Errorf("%w: goal key %q", ErrUnknownValue, s)
	}

	key := GoalKey{Category: Category(rest[:idx]), Period: Period(rest[idx+1:])}
	if !key.Category.Valid() || !key.Period.Valid() {
		return GoalKey{}, fmt.Errorf("%w: goal key %q", ErrUnknownValue, s)
	}
	return key, nil
}

// GoalKeysFor returns the daily, weekly and monthly keys of c.
func GoalKeysFor(c Category) []GoalKey {
	keys := make([]GoalKey, 0, len(Periods))
	for _, p := range Periods {
		keys = append(keys, GoalKey{Category: c, Period: p})
	}
	return keys
}

// Goal is a numeric target for a category and period.
type Goal struct {
	GoalKey
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// GoalDescription renders the description stored next to a goal, e.g.
// "Meta diária para Água (L)".
func GoalDescription(p Period, displayName, unit string) string {
	return fmt.Sprintf("Meta %s para %s (%s)", p.Label(), displayName, unit)
}

// GoalUpdate is a single requested change of a goal value.
type GoalUpdate struct {
	GoalKey
	Value float64 `json:"value"`
}

// GoalUpdateResult is the outcome of one GoalUpdate. Error is empty on
// success.
type GoalUpdateResult struct {
	GoalKey
	Error string `json:"error,omitempty"`
}
