// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

// UnknownAuthor is shown when an idea's owner has no resolvable profile.
const UnknownAuthor = "Usuário"

const authorBatchWait = 2 * time.Millisecond

type ideaCache struct {
	adapter   adapter.ServerAdapter
	sessions  SessionStore
	validator validators.Validator
	logger    *logger.Logger

	mu         sync.RWMutex
	ideas      []models.Idea
	generation uint64
	seq        uint64

	wg sync.WaitGroup
}

// NewIdeaCache returns an empty cache bound to the given session store.
func NewIdeaCache(serverAdapter adapter.ServerAdapter, sessions SessionStore, logger *logger.Logger) IdeaCache {
	return &ideaCache{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validators.NewIdeaValidator(),
		logger:    logger,
	}
}

func (c *ideaCache) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	generation := c.sessions.Generation()
	if _, ok := c.sessions.CurrentSession(); !ok {
		c.clear()
		return nil
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	ideas, err := c.adapter.ListIdeas(ctx, models.IdeaFilter{})
	if err != nil {
		log.Err(err).Msg("failed to list ideas")
		return fmt.Errorf("refresh ideas: %w", mapAdapterError(err))
	}

	c.resolveAuthors(ctx, ideas)
	slices.SortStableFunc(ideas, func(a, b models.Idea) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq || generation != c.sessions.Generation() {
		log.Debug().Uint64("seq", seq).Msg("stale idea refresh discarded")
		return nil
	}
	c.ideas = ideas
	c.generation = generation

	log.Debug().Int("count", len(ideas)).Msg("ideas refreshed")
	return nil
}

// resolveAuthors fills Author for every idea with one lookup per batch of
// distinct owners. Lookup failures fall back to UnknownAuthor.
func (c *ideaCache) resolveAuthors(ctx context.Context, ideas []models.Idea) {
	if len(ideas) == 0 {
		return
	}

	loader := dataloader.NewBatchedLoader(
		c.authorBatchFn(),
		dataloader.WithBatchCapacity[string, string](MaxLookupIDs),
		dataloader.WithWait[string, string](authorBatchWait),
	)

	thunks := make(map[string]dataloader.Thunk[string])
	for _, idea := range ideas {
		if _, ok := thunks[idea.UserID]; ok {
			continue
		}
		thunks[idea.UserID] = loader.Load(ctx, idea.UserID)
	}

	names := make(map[string]string, len(thunks))
	for userID, thunk := range thunks {
		name, err := thunk()
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("author lookup failed")
		}
		if name == "" {
			name = UnknownAuthor
		}
		names[userID] = name
	}

	for i := range ideas {
		ideas[i].Author = names[ideas[i].UserID]
	}
}

func (c *ideaCache) authorBatchFn() dataloader.BatchFunc[string, string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[string] {
		profiles, err := c.adapter.LookupProfiles(ctx, keys)
		if err != nil {
			return errorResults[string](len(keys), err)
		}

		byID := make(map[string]string, len(profiles))
		for _, p := range profiles {
			byID[p.UserID] = p.Name
		}
		return mapResults(keys, byID)
	}
}

func (c *ideaCache) Create(ctx context.Context, draft models.IdeaDraft) (models.Idea, error) {
	log := logger.FromContext(ctx)

	principal, ok := c.sessions.CurrentPrincipal()
	if !ok {
		return models.Idea{}, ErrNotAuthenticated
	}
	generation := c.sessions.Generation()

	if err := c.validator.Validate(ctx, draft); err != nil {
		return models.Idea{}, fmt.Errorf("create idea: %w", err)
	}

	req := models.CreateIdeaRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Impact:      draft.Impact,
	}

	if draft.Attachment != nil {
		attachment, err := c.adapter.UploadAttachment(ctx, *draft.Attachment)
		if err != nil {
			log.Err(err).Str("file_name", draft.Attachment.FileName).Msg("attachment upload failed")
			return models.Idea{}, fmt.Errorf("%w: %w", ErrUploadFailed, mapAdapterError(err))
		}
		req.FileURL = &attachment.URL
		req.FileName = &attachment.FileName
	}

	idea, err := c.adapter.CreateIdea(ctx, req)
	if err != nil {
		log.Err(err).Msg("idea insert failed")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrInsertFailed, mapAdapterError(err))
	}
	idea.Author = principal.Name

	c.mu.Lock()
	if generation == c.sessions.Generation() {
		c.ideas = slices.Insert(c.ideas, 0, idea)
	}
	c.mu.Unlock()

	log.Info().Str("idea_id", idea.ID).Msg("idea created")
	return idea, nil
}

func (c *ideaCache) UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, error) {
	if err := c.validator.Validate(ctx, models.StatusUpdateRequest{Status: status}); err != nil {
		return models.Idea{}, fmt.Errorf("update status: %w", err)
	}

	// always asked: the server owns the role check, and a repeated status
	// is a no-op there
	idea, err := c.adapter.UpdateIdeaStatus(ctx, ideaID, status)
	if err != nil {
		return models.Idea{}, fmt.Errorf("update status: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	if j := c.indexLocked(ideaID); j >= 0 {
		idea.Author = c.ideas[j].Author
		c.ideas[j] = idea
	}
	c.mu.Unlock()

	logger.FromContext(ctx).Info().
		Str("idea_id", ideaID).
		Str("status", string(status)).
		Msg("idea status updated")
	return idea, nil
}

func (c *ideaCache) ForUser(principalID string) []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Idea, 0)
	for _, idea := range c.ideas {
		if idea.UserID == principalID {
			out = append(out, idea)
		}
	}
	return out
}

func (c *ideaCache) All() []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.ideas)
}

func (c *ideaCache) Filter(filter models.IdeaFilter) []models.Idea {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Idea, 0, len(c.ideas))
	for _, idea := range c.ideas {
		if filter.Status != "" && idea.Status != filter.Status {
			continue
		}
		if filter.Category != "" && idea.Category != filter.Category {
			continue
		}
		out = append(out, idea)
	}
	return out
}

func (c *ideaCache) Watch(ctx context.Context) func() {
	return c.sessions.Subscribe(func(change SessionChange) {
		switch change.Kind {
		case SessionSignedOut:
			c.clear()
		case SessionSignedIn, SessionProfileResolved:
			c.wg.Add(1)
			go func() {
				defer c.wg.Done()
				if err := c.Refresh(ctx); err != nil {
					logger.FromContext(ctx).Warn().Err(err).Msg("background idea refresh failed")
				}
			}()
		}
	})
}

func (c *ideaCache) Wait() {
	c.wg.Wait()
}

func (c *ideaCache) clear() {
	c.mu.Lock()
	c.ideas = nil
	c.seq++
	c.mu.Unlock()
}

func (c *ideaCache) indexLocked(ideaID string) int {
	return slices.IndexFunc(c.ideas, func(idea models.Idea) bool {
		return idea.ID == ideaID
	})
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

func mapResults[K comparable, V any](keys []K, values map[K]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: values[key]}
	}
	return results
}
