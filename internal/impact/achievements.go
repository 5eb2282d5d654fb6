// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package impact

import "github.com/MKhiriev/eco-ideas/models"

// Thresholds configures when achievements unlock.
type Thresholds struct {
	FirstIdea    int // submitted
	GreenPartner int // approved
	Innovator    int // approved
	EcoChampion  int // submitted
}

// DefaultThresholds returns the built-in thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FirstIdea:    1,
		GreenPartner: 2,
		Innovator:    3,
		EcoChampion:  5,
	}
}

// Achievement is a milestone shown on the user dashboard.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// Achievements evaluates every achievement for ideas.
func Achievements(ideas []models.Idea, t Thresholds) []Achievement {
	submitted := len(ideas)
	approved := countStatus(ideas, models.StatusApproved)

	return []Achievement{
		{
			ID:          "first_idea",
			Title:       "Primeira Ideia",
			Description: "Enviou sua primeira ideia sustentável",
			Unlocked:    submitted >= t.FirstIdea,
		},
		{
			ID:          "green_partner",
			Title:       "Parceiro Verde",
			Description: "Teve ideias aprovadas",
			Unlocked:    approved >= t.GreenPartner,
		},
		{
			ID:          "innovator",
			Title:       "Inovador",
			Description: "Teve várias ideias aprovadas",
			Unlocked:    approved >= t.Innovator,
		},
		{
			ID:          "eco_champion",
			Title:       "Campeão Eco",
			Description: "Enviou muitas ideias",
			Unlocked:    submitted >= t.EcoChampion,
		},
	}
}
