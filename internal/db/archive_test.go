package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/battlecore/internal/report"
)

func sampleResolution(title string) *Resolution {
	return &Resolution{
		Title:  title,
		Seed:   7,
		Turns:  3,
		Winner: "Hunchback HBK-4G",
		Units: []UnitSummary{
			{Name: "Hunchback HBK-4G", Kind: "Mek", StartBV: 1041, EndBV: 612},
			{Name: "Manticore Heavy Tank", Kind: "Vehicle", StartBV: 1000, Destroyed: true, Cause: "ammunition explosion"},
		},
		Reports: []report.Report{
			*report.New(report.MsgDamageHeader).About("Manticore Heavy Tank").Add(20),
			*report.New(report.MsgPhaseEnd).Add(0).Line(),
		},
	}
}

func TestLogRoundTrip(t *testing.T) {
	in := sampleResolution("x").Reports
	blob, err := encodeLog(in)
	require.NoError(t, err)

	out, err := decodeLog(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeLog([]byte("not gzip"))
	assert.ErrorContains(t, err, "decompress log")
}

func newSQLite(t *testing.T) *SQLiteArchive {
	t.Helper()
	conn, err := ConnectArchiveDB(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	a := NewSQLiteArchive(conn, zerolog.Nop())
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSQLiteArchive(t *testing.T) {
	ctx := context.Background()
	a := newSQLite(t)

	first := sampleResolution("duel one")
	first.CreatedAt = time.Date(3025, 5, 1, 12, 0, 0, 999_999_999, time.UTC)
	require.NoError(t, a.Save(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := sampleResolution("duel two")
	second.CreatedAt = first.CreatedAt.Add(time.Hour)
	require.NoError(t, a.Save(ctx, second))

	got, err := a.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Title, got.Title)
	assert.Equal(t, first.Winner, got.Winner)
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt), "got %s", got.CreatedAt)
	assert.Equal(t, 999_000_000, got.CreatedAt.Nanosecond())
	assert.Equal(t, first.Units, got.Units)
	assert.Equal(t, first.Reports, got.Reports)

	list, err := a.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, 2, list[1].ReportCount)

	list, err = a.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = a.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	// ids are unique
	assert.Error(t, a.Save(ctx, first))
}

func TestPGArchive(t *testing.T) {
	url := os.Getenv("BATTLECORE_TEST_POSTGRES")
	if url == "" {
		t.Skip("BATTLECORE_TEST_POSTGRES not set")
	}
	ctx := context.Background()
	a, err := ConnectPostgres(ctx, url, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	r := sampleResolution("pg duel")
	require.NoError(t, a.Save(ctx, r))

	got, err := a.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Units, got.Units)
	assert.Equal(t, r.Reports, got.Reports)

	_, err = a.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
