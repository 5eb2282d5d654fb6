// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/mock"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

func newTestGoalStore(t *testing.T) (*goalStore, *mock.MockServerAdapter) {
	t.Helper()
	a := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewGoalStore(a, logger.Nop()).(*goalStore), a
}

func goal(c models.Category, p models.Period, v float64) models.Goal {
	return models.Goal{GoalKey: models.GoalKey{Category: c, Period: p}, Value: v}
}

func TestGoalStore_Load(t *testing.T) {
	s, a := newTestGoalStore(t)

	a.EXPECT().ListCategories(gomock.Any()).Return([]models.CategoryInfo{
		{Name: models.CategoryWater, DisplayName: "Água", Unit: "L", HasGoals: true},
		{Name: models.CategoryTransport, DisplayName: "Transporte", Unit: "km"},
	}, nil)
	a.EXPECT().ListGoals(gomock.Any()).Return([]models.Goal{
		goal(models.CategoryWater, models.PeriodDaily, 120),
		goal(models.CategoryWater, models.PeriodWeekly, -3),
		goal(models.CategoryWater, models.PeriodMonthly, math.NaN()),
		goal("lava", models.PeriodDaily, 10),
		goal(models.CategoryWater, "hourly", 10),
	}, nil)

	require.NoError(t, s.Load(context.Background()))

	assert.Len(t, s.Goals(), 1)
	assert.Equal(t, 120.0, s.Get(models.CategoryWater, models.PeriodDaily))
	assert.Equal(t, models.DefaultGoal(models.CategoryWater, models.PeriodWeekly), s.Get(models.CategoryWater, models.PeriodWeekly))
	assert.Equal(t, "Água", s.Registry().Label(models.CategoryWater))
	assert.Len(t, s.Categories(), 2)
}

func TestGoalStore_Load_Failure(t *testing.T) {
	s, a := newTestGoalStore(t)
	a.EXPECT().ListCategories(gomock.Any()).Return(nil, adapter.ErrTransport)

	err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, models.DefaultGoal(models.CategoryEnergy, models.PeriodMonthly), s.Get(models.CategoryEnergy, models.PeriodMonthly))
}

func TestGoalStore_SetMany(t *testing.T) {
	s, a := newTestGoalStore(t)
	s.goals[models.GoalKey{Category: models.CategoryWater, Period: models.PeriodDaily}] = goal(models.CategoryWater, models.PeriodDaily, 100)

	waterDaily := models.GoalUpdate{GoalKey: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodDaily}, Value: 150}
	energyDaily := models.GoalUpdate{GoalKey: models.GoalKey{Category: models.CategoryEnergy, Period: models.PeriodDaily}, Value: 30}
	wasteDaily := models.GoalUpdate{GoalKey: models.GoalKey{Category: models.CategoryWaste, Period: models.PeriodDaily}, Value: 0}

	a.EXPECT().UpdateGoals(gomock.Any(), []models.GoalUpdate{waterDaily, energyDaily}).Return([]models.GoalUpdateResult{
		{GoalKey: waterDaily.GoalKey},
		{GoalKey: energyDaily.GoalKey, Error: app.MsgGoalNotFound},
	}, nil)

	failures := s.SetMany(context.Background(), []models.GoalUpdate{waterDaily, energyDaily, wasteDaily})

	require.Len(t, failures, 2)
	assert.Equal(t, wasteDaily.GoalKey, failures[0].Key)
	assert.ErrorIs(t, failures[0].Err, validators.ErrInvalidGoalValue)
	assert.Equal(t, "O valor da meta deve ser maior que zero.", failures[0].Reason)
	assert.Equal(t, energyDaily.GoalKey, failures[1].Key)
	assert.ErrorIs(t, failures[1].Err, ErrNotFound)

	assert.Equal(t, 150.0, s.Get(models.CategoryWater, models.PeriodDaily))
}

func TestGoalStore_SetMany_RequestFailure(t *testing.T) {
	s, a := newTestGoalStore(t)
	u := models.GoalUpdate{GoalKey: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodMonthly}, Value: 5000}
	a.EXPECT().UpdateGoals(gomock.Any(), gomock.Any()).Return(nil, adapter.NewStatusError(http.StatusForbidden, app.MsgAccessDenied))

	failures := s.SetMany(context.Background(), []models.GoalUpdate{u, u})
	require.Len(t, failures, 2)
	for _, f := range failures {
		assert.ErrorIs(t, f.Err, ErrForbidden)
		assert.Equal(t, "Acesso negado.", f.Reason)
	}
	assert.Equal(t, models.DefaultGoal(models.CategoryWater, models.PeriodMonthly), s.Get(models.CategoryWater, models.PeriodMonthly))
}

func TestGoalStore_SetMany_Empty(t *testing.T) {
	s, _ := newTestGoalStore(t)
	assert.Empty(t, s.SetMany(context.Background(), nil))
}

func TestGoalStore_ActivateDeactivate(t *testing.T) {
	s, a := newTestGoalStore(t)
	s.categories = []models.CategoryInfo{{Name: models.CategoryTransport}}
	activated := []models.Goal{
		goal(models.CategoryTransport, models.PeriodDaily, 10),
		goal(models.CategoryTransport, models.PeriodWeekly, 70),
		goal(models.CategoryTransport, models.PeriodMonthly, 300),
	}

	a.EXPECT().ActivateCategoryGoals(gomock.Any(), models.CategoryTransport).Return(activated, nil)
	a.EXPECT().DeactivateCategoryGoals(gomock.Any(), models.CategoryTransport).Return(nil)

	ctx := context.Background()
	goals, err := s.ActivateCategory(ctx, models.CategoryTransport)
	require.NoError(t, err)
	assert.Len(t, goals, 3)
	assert.Equal(t, 70.0, s.Get(models.CategoryTransport, models.PeriodWeekly))
	assert.True(t, s.Registry()[models.CategoryTransport].HasGoals)

	require.NoError(t, s.DeactivateCategory(ctx, models.CategoryTransport))
	assert.Empty(t, s.Goals())
	assert.False(t, s.Registry()[models.CategoryTransport].HasGoals)

	_, err = s.ActivateCategory(ctx, "lava")
	assert.ErrorIs(t, err, validators.ErrInvalidCategory)
}

func TestGoalStore_Clear(t *testing.T) {
	s, _ := newTestGoalStore(t)
	s.goals[models.GoalKey{Category: models.CategoryWater, Period: models.PeriodDaily}] = goal(models.CategoryWater, models.PeriodDaily, 1)
	s.categories = []models.CategoryInfo{{Name: models.CategoryWater}}

	s.Clear()
	assert.Empty(t, s.Goals())
	assert.Empty(t, s.Categories())
}
