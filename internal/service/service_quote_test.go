// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/mock"
	"github.com/MKhiriev/quote-sync/internal/store"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/internal/validators"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwner = "0192c0de-0000-7000-8000-000000000001"

func newTestQuoteService(t *testing.T) (QuoteService, *mock.MockQuoteRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockQuoteRepository(ctrl)
	return NewQuoteService(repo, logger.Nop()), repo
}

func storedQuote(q models.Quote, revision int64) models.StoredQuote {
	body, _ := json.Marshal(q)
	return models.StoredQuote{
		OwnerID:      testOwner,
		Body:         body,
		Revision:     revision,
		VersionToken: utils.VersionToken(testOwner, revision, body),
	}
}

// ─────────────────────────────────────────────
// GetQuote
// ─────────────────────────────────────────────

func TestQuoteService_GetQuote_Existing(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	want := storedQuote(models.Quote{Currency: "EUR"}, 3)

	repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(want, nil)

	got, err := svc.GetQuote(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQuoteService_GetQuote_CreatesEmptyQuoteLazily(t *testing.T) {
	svc, repo := newTestQuoteService(t)

	gomock.InOrder(
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{}, store.ErrQuoteNotFound),
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q models.StoredQuote) (models.StoredQuote, error) {
				assert.Equal(t, testOwner, q.OwnerID)
				assert.Equal(t, int64(1), q.Revision)
				assert.JSONEq(t, `{"customer":{"name":""},"currency":"","items":[]}`, string(q.Body))
				assert.Equal(t, utils.VersionToken(testOwner, 1, q.Body), q.VersionToken)
				return q, nil
			}),
	)

	got, err := svc.GetQuote(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Revision)
	assert.NotEmpty(t, got.VersionToken)
}

func TestQuoteService_GetQuote_CreateRaceRereads(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	winner := storedQuote(models.Quote{}, 1)

	gomock.InOrder(
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{}, store.ErrQuoteNotFound),
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(models.StoredQuote{}, store.ErrQuoteAlreadyExists),
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(winner, nil),
	)

	got, err := svc.GetQuote(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, winner, got)
}

func TestQuoteService_GetQuote_Errors(t *testing.T) {
	t.Run("no owner", func(t *testing.T) {
		svc, _ := newTestQuoteService(t)
		_, err := svc.GetQuote(context.Background(), "")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{}, store.ErrExecutingQuery)

		_, err := svc.GetQuote(context.Background(), testOwner)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

// ─────────────────────────────────────────────
// SaveQuote
// ─────────────────────────────────────────────

func TestQuoteService_SaveQuote_MatchingToken(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	current := storedQuote(models.Quote{Currency: "EUR"}, 4)
	next := models.Quote{Currency: "EUR", Items: []models.QuoteItem{{Name: "Desk", Quantity: 1, UnitPrice: 100}}}

	gomock.InOrder(
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(current, nil),
		repo.EXPECT().UpdateQuote(gomock.Any(), gomock.Any(), current.VersionToken).DoAndReturn(
			func(_ context.Context, q models.StoredQuote, _ string) (models.StoredQuote, error) {
				assert.Equal(t, int64(5), q.Revision)
				assert.Equal(t, utils.VersionToken(testOwner, 5, q.Body), q.VersionToken)
				assert.NotEqual(t, current.VersionToken, q.VersionToken)
				return q, nil
			}),
	)

	got, err := svc.SaveQuote(context.Background(), testOwner, next, current.VersionToken)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Revision)

	var decoded models.Quote
	require.NoError(t, json.Unmarshal(got.Body, &decoded))
	assert.Equal(t, next, decoded)
}

func TestQuoteService_SaveQuote_StaleToken(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	current := storedQuote(models.Quote{}, 2)

	repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(current, nil)

	_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, "stale")
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestQuoteService_SaveQuote_LostCompareAndSwap(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	current := storedQuote(models.Quote{}, 2)

	repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(current, nil)
	repo.EXPECT().UpdateQuote(gomock.Any(), gomock.Any(), current.VersionToken).Return(models.StoredQuote{}, store.ErrVersionConflict)

	_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, current.VersionToken)
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestQuoteService_SaveQuote_IfMatchOnMissingQuote(t *testing.T) {
	svc, repo := newTestQuoteService(t)
	repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{}, store.ErrQuoteNotFound)

	_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, "v1")
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestQuoteService_SaveQuote_AnyVersion(t *testing.T) {
	t.Run("overwrites existing quote", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		current := storedQuote(models.Quote{Currency: "EUR"}, 7)

		gomock.InOrder(
			repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(current, nil),
			repo.EXPECT().UpdateQuote(gomock.Any(), gomock.Any(), current.VersionToken).DoAndReturn(
				func(_ context.Context, q models.StoredQuote, _ string) (models.StoredQuote, error) {
					return q, nil
				}),
		)

		got, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{Currency: "USD"}, utils.AnyVersion)
		require.NoError(t, err)
		assert.Equal(t, int64(8), got.Revision)
	})

	t.Run("fails when nothing exists", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		repo.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{}, store.ErrQuoteNotFound)
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, utils.AnyVersion)
		assert.ErrorIs(t, err, store.ErrVersionConflict)
		assert.ErrorIs(t, err, store.ErrQuoteNotFound)
	})
}

func TestQuoteService_SaveQuote_WithoutToken(t *testing.T) {
	t.Run("creates first quote", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q models.StoredQuote) (models.StoredQuote, error) { return q, nil })

		got, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{Currency: "USD"}, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Revision)
	})

	t.Run("quote already exists", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(models.StoredQuote{}, store.ErrQuoteAlreadyExists)

		_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, "")
		assert.ErrorIs(t, err, store.ErrVersionConflict)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, repo := newTestQuoteService(t)
		repo.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(models.StoredQuote{}, store.ErrExecutingQuery)

		_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{}, "")
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
		assert.False(t, errors.Is(err, store.ErrVersionConflict))
	})
}

// ─────────────────────────────────────────────
// QuoteValidationService
// ─────────────────────────────────────────────

func TestQuoteValidationService_NormalizesBeforeSaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockQuoteService(ctrl)
	svc := NewQuoteValidationService().Wrap(inner)

	in := models.Quote{Currency: " eur ", Items: []models.QuoteItem{{Name: " Desk ", Quantity: -2, UnitPrice: 100}, {}}}
	want := models.Quote{Currency: "EUR", Items: []models.QuoteItem{{Name: "Desk", Quantity: 0, UnitPrice: 100}}}

	inner.EXPECT().SaveQuote(gomock.Any(), testOwner, want, "v1").Return(models.StoredQuote{Revision: 2}, nil)

	got, err := svc.SaveQuote(context.Background(), testOwner, in, "v1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Revision)
}

func TestQuoteValidationService_RejectsInvalidQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockQuoteService(ctrl)
	svc := NewQuoteValidationService().Wrap(inner)

	_, err := svc.SaveQuote(context.Background(), testOwner, models.Quote{Currency: "EURO"}, "v1")
	assert.ErrorIs(t, err, ErrInvalidQuote)
	assert.ErrorIs(t, err, validators.ErrInvalidCurrency)
}

func TestQuoteValidationService_GetQuotePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockQuoteService(ctrl)
	svc := NewQuoteValidationService().Wrap(inner)

	inner.EXPECT().GetQuote(gomock.Any(), testOwner).Return(models.StoredQuote{Revision: 7}, nil)

	got, err := svc.GetQuote(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Revision)
}
