// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/mock"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/validators"
	"github.com/MKhiriev/go-id-keeper/models"
)

func TestBackupHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockBackupJournal(ctrl)
	ctx := context.Background()

	want := []models.BackupEntry{{ID: 2}, {ID: 1}}
	journal.EXPECT().ListBackups(ctx, uint64(20)).Return(want, nil)

	got, err := NewBackupHistoryService(journal, logger.Nop()).List(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBackupHistoryService_List_Disabled(t *testing.T) {
	svc := NewBackupHistoryService(store.NewNopBackupJournal(), logger.Nop())

	_, err := svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrJournalDisabled)
}

func TestBackupTaker_NoBackup_SkipsJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupManager(ctrl)
	journal := mock.NewMockBackupJournal(ctrl)
	ctx := context.Background()

	backups.EXPECT().BackupIfExists(ctx, "/x").Return("", false, nil)

	taker := newBackupTaker(backups, journal, validators.NewIdentityValidator(), logger.Nop())
	path, created, err := taker.take(ctx, models.ArtifactIDFile, "/x")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, path)
}

func TestBackupTaker_RecordsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupManager(ctrl)
	journal := mock.NewMockBackupJournal(ctrl)
	ctx := context.Background()
	at := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	backups.EXPECT().BackupIfExists(ctx, "/x").Return("/x_backup_20261016_080000", true, nil)
	journal.EXPECT().RecordBackup(ctx, models.BackupEntry{
		Kind:         models.ArtifactStorageRecord,
		OriginalPath: "/x",
		BackupPath:   "/x_backup_20261016_080000",
		CreatedAt:    at,
	}).Return(models.BackupEntry{ID: 3}, nil)

	taker := newBackupTaker(backups, journal, validators.NewIdentityValidator(), logger.Nop())
	taker.now = func() time.Time { return at }

	path, created, err := taker.take(ctx, models.ArtifactStorageRecord, "/x")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "/x_backup_20261016_080000", path)
}

func TestBackupTaker_InvalidEntry_SkipsJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupManager(ctrl)
	journal := mock.NewMockBackupJournal(ctrl)
	ctx := context.Background()

	backups.EXPECT().BackupIfExists(ctx, "/x").Return("/x_backup", true, nil)

	taker := newBackupTaker(backups, journal, validators.NewIdentityValidator(), logger.Nop())
	_, created, err := taker.take(ctx, models.ArtifactKind(0), "/x")
	require.NoError(t, err)
	assert.True(t, created)
}
