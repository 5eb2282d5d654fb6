// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/eco-ideas/models"
)

// LocalStateRepository is the client's durable state: the current session and
// the last principal resolved for it.
//
//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_state_mock.go -package=mock
type LocalStateRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	SavePrincipal(ctx context.Context, principal models.Principal) error
	LoadPrincipal(ctx context.Context) (models.Principal, error)
	Clear(ctx context.Context) error
}
