// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/kurmanji-corpus/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.IndexConfig{
		Path:       filepath.Join(t.TempDir(), "processed", "kurmanji.db"),
		MaxResults: 20,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []types.Record {
	return []types.Record{
		{
			FileName:  "ciroka_rovi_u_ser.pdf",
			CharCount: 44,
			WordCount: 7,
			Text:      "Hebû tunebû, rovîyek hebû.\nRojekê şêr hat...",
		},
		{
			FileName:  "gundi.pdf",
			CharCount: 31,
			WordCount: 6,
			Text:      "Gundî çû bajêr.\n\nRovî li mal ma.",
		},
	}
}

func rebuild(t *testing.T, store *Store, records []types.Record) RebuildSummary {
	t.Helper()
	var buf strings.Builder
	summary, err := store.Rebuild(context.Background(), records, &buf)
	require.NoError(t, err)
	return summary
}

// --- schema ---

func TestOpenCreatesSchema(t *testing.T) {
	store := testStore(t)

	for _, table := range []string{"documents", "sentences"} {
		var count int
		err := store.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equalf(t, 1, count, "table %s", table)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(types.IndexConfig{})
	assert.Error(t, err)
}

// --- rebuild ---

func TestRebuild(t *testing.T) {
	store := testStore(t)

	summary := rebuild(t, store, sampleRecords())
	assert.Equal(t, RebuildSummary{Documents: 2, Sentences: 4}, summary)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Documents: 2, Sentences: 4, Chars: 75, Words: 13}, st)
}

func TestRebuildReplacesPreviousContents(t *testing.T) {
	store := testStore(t)
	rebuild(t, store, sampleRecords())
	rebuild(t, store, sampleRecords()[:1])

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, st.Documents)
	assert.Equal(t, 2, st.Sentences)
}

func TestRebuildDuplicateRecords(t *testing.T) {
	store := testStore(t)
	recs := sampleRecords()[:1]
	recs = append(recs, recs[0])

	summary := rebuild(t, store, recs)
	assert.Equal(t, 2, summary.Documents)
}

func TestStatsEmpty(t *testing.T) {
	store := testStore(t)
	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

// --- search ---

func TestSearch(t *testing.T) {
	store := testStore(t)
	rebuild(t, store, sampleRecords())

	tests := []struct {
		name string
		opts QueryOptions
		want []Hit
	}{
		{
			name: "substring across documents",
			opts: QueryOptions{Query: "rovî"},
			want: []Hit{
				{FileName: "ciroka_rovi_u_ser.pdf", Position: 0, LineNo: 1, Text: "Hebû tunebû, rovîyek hebû."},
				{FileName: "gundi.pdf", Position: 1, LineNo: 3, Text: "Rovî li mal ma."},
			},
		},
		{
			name: "filter by file name",
			opts: QueryOptions{FileName: "gundi.pdf"},
			want: []Hit{
				{FileName: "gundi.pdf", Position: 1, LineNo: 1, Text: "Gundî çû bajêr."},
				{FileName: "gundi.pdf", Position: 1, LineNo: 3, Text: "Rovî li mal ma."},
			},
		},
		{
			name: "query and file name",
			opts: QueryOptions{Query: "hat", FileName: "ciroka_rovi_u_ser.pdf"},
			want: []Hit{
				{FileName: "ciroka_rovi_u_ser.pdf", Position: 0, LineNo: 2, Text: "Rojekê şêr hat..."},
			},
		},
		{
			name: "max results",
			opts: QueryOptions{Query: ".", MaxResults: 1},
			want: []Hit{
				{FileName: "ciroka_rovi_u_ser.pdf", Position: 0, LineNo: 1, Text: "Hebû tunebû, rovîyek hebû."},
			},
		},
		{
			name: "wildcards match literally",
			opts: QueryOptions{Query: "%"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := store.Search(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hits)
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	store := testStore(t)
	_, err := store.Search(context.Background(), QueryOptions{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% of a\_b \\ c`, escapeLike(`50% of a_b \ c`))
}
