// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdeaStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to IdeaStatus
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, true},
		{StatusApproved, StatusApproved, true},
		{StatusRejected, StatusRejected, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, IdeaStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGoalKey_RoundTrip(t *testing.T) {
	key := GoalKey{Category: CategoryBiodiversity, Period: PeriodMonthly}
	assert.Equal(t, "goal_biodiversity_monthly", key.SettingKey())

	parsed, err := ParseGoalKey(key.SettingKey())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParseGoalKey_Invalid(t *testing.T) {
	for _, raw := range []string{"", "goal_", "goal_water", "goal_lava_daily", "goal_water_hourly", "water_daily"} {
		_, err := ParseGoalKey(raw)
		assert.ErrorIs(t, err, ErrUnknownValue, raw)
	}
}

func TestDefaultGoal(t *testing.T) {
	assert.Equal(t, 350.0, DefaultGoal(CategoryWater, PeriodDaily))
	assert.Equal(t, 1000.0, DefaultGoal(CategoryEnergy, PeriodMonthly))
	assert.Equal(t, 125.0, DefaultGoal(CategoryWaste, PeriodWeekly))
	assert.Equal(t, float64(DefaultGoalValue), DefaultGoal(CategoryTransport, PeriodDaily))
}

func TestAttachmentKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "u-1/1700000000123.pdf", AttachmentKey("u-1", "Relatório.PDF", at))
	assert.Equal(t, "u-1/1700000000123", AttachmentKey("u-1", "README", at))
}

func TestFallbackPrincipal(t *testing.T) {
	p := FallbackPrincipal("id-1", "ana.silva@empresa.com")
	assert.Equal(t, "ana.silva", p.Name)
	assert.Equal(t, RoleUser, p.Role)
	assert.True(t, p.Provisional)
	assert.False(t, p.IsAdmin())
}

func TestParseEnums(t *testing.T) {
	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownValue)
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseCategory("air")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = ParseIdeaStatus("archived")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestCategoryRegistry(t *testing.T) {
	reg := NewCategoryRegistry([]CategoryInfo{{Name: CategoryWater, DisplayName: "Água", Unit: "L"}})
	assert.Equal(t, "Água", reg.Label(CategoryWater))
	assert.Equal(t, "L", reg.Unit(CategoryWater))
	assert.Equal(t, "energy", reg.Label(CategoryEnergy))
}
