package ingesting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

func validPreview() *ParseResult {
	return &ParseResult{
		Rows:   []Row{ValidRow{RowNumber: 1, Source: RawRow{Date: "2025-11-27", StoreID: "S1", SKUID: "SKU1", UnitsSold: "2"}}},
		Errors: []domain.ValidationError{},
	}
}

func readyState(t *testing.T) State {
	t.Helper()
	state := Reduce(State{}, FileSelected{FileName: "sales.csv"})
	state = Reduce(state, PreviewReady{Generation: state.Generation, Result: validPreview()})
	require.Equal(t, PhaseReady, state.Phase)
	return state
}

func TestReduce_FileSelectedBumpsGeneration(t *testing.T) {
	state := Reduce(State{Generation: 3, Phase: PhaseUploaded, Message: "old"}, FileSelected{FileName: "next.csv"})

	assert.Equal(t, uint64(4), state.Generation)
	assert.Equal(t, PhaseParsing, state.Phase)
	assert.Equal(t, "next.csv", state.FileName)
	assert.Empty(t, state.Message)
	assert.Nil(t, state.Preview)
}

func TestReduce_PreviewWithErrorsBlocksUpload(t *testing.T) {
	state := Reduce(State{}, FileSelected{FileName: "bad.csv"})
	state = Reduce(state, PreviewReady{Generation: state.Generation, Result: &ParseResult{
		Rows:   []Row{InvalidRow{RowNumber: 1}},
		Errors: []domain.ValidationError{{Row: 1, Field: "date", Message: "Invalid or missing date"}},
	}})

	assert.Equal(t, PhaseInvalid, state.Phase)
	assert.False(t, state.CanUpload())

	next := Reduce(state, UploadStarted{Generation: state.Generation})
	assert.Equal(t, state, next)
}

func TestReduce_EmptyPreviewBlocksUpload(t *testing.T) {
	state := Reduce(State{}, FileSelected{FileName: "empty.csv"})
	state = Reduce(state, PreviewReady{Generation: state.Generation, Result: &ParseResult{}})

	assert.Equal(t, PhaseInvalid, state.Phase)
	assert.False(t, state.CanUpload())
}

func TestReduce_PreviewFailed(t *testing.T) {
	state := Reduce(State{}, FileSelected{FileName: "broken.csv"})
	state = Reduce(state, PreviewFailed{Generation: state.Generation, Err: &domain.FileParseError{Err: errors.New("bare quote")}})

	assert.Equal(t, PhaseParseError, state.Phase)
	assert.Equal(t, "failed to parse CSV: bare quote", state.Message)
	assert.False(t, state.CanUpload())
}

func TestReduce_UploadLifecycle(t *testing.T) {
	state := readyState(t)

	state = Reduce(state, UploadStarted{Generation: state.Generation})
	require.Equal(t, PhaseUploading, state.Phase)
	assert.False(t, state.CanUpload())

	outcome := &domain.UploadOutcome{
		Primary: domain.UpsertResult{Success: true, Inserted: 1},
		Message: "Successfully ingested 1 rows (1 new, 0 updated)",
	}
	state = Reduce(state, UploadFinished{Generation: state.Generation, Outcome: outcome})

	assert.Equal(t, PhaseUploaded, state.Phase)
	assert.Equal(t, outcome, state.Outcome)
	assert.Equal(t, outcome.Message, state.Message)
	assert.True(t, state.CanUpload())
}

func TestReduce_UploadFailureKeepsPreviewForRetry(t *testing.T) {
	state := readyState(t)
	state = Reduce(state, UploadStarted{Generation: state.Generation})
	state = Reduce(state, UploadFinished{Generation: state.Generation, Err: &domain.NetworkError{Op: "upsert", StatusCode: 502, Err: errors.New("bad gateway")}})

	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, "Upload failed: bad gateway", state.Message)
	assert.Len(t, state.Preview, 1)
	assert.True(t, state.CanUpload())
}

func TestReduce_NoValidRowsRequiresNewFile(t *testing.T) {
	state := readyState(t)
	state = Reduce(state, UploadStarted{Generation: state.Generation})
	state = Reduce(state, UploadFinished{Generation: state.Generation, Err: fmt.Errorf("normalize: %w", domain.ErrNoValidRows)})

	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.Equal(t, "No valid rows found in CSV", state.Message)
	assert.False(t, state.CanUpload())

	retry := Reduce(state, UploadStarted{Generation: state.Generation})
	assert.Equal(t, state, retry)

	state = Reduce(state, FileSelected{FileName: "fixed.csv"})
	state = Reduce(state, PreviewReady{Generation: state.Generation, Result: validPreview()})
	assert.True(t, state.CanUpload())
}

func TestReduce_RejectedUpsertIsFailure(t *testing.T) {
	state := readyState(t)
	state = Reduce(state, UploadStarted{Generation: state.Generation})
	state = Reduce(state, UploadFinished{Generation: state.Generation, Outcome: &domain.UploadOutcome{
		Primary: domain.UpsertResult{Success: false, Errors: []string{"a", "b"}},
		Message: "Upload failed: 2 errors",
	}})

	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, "Upload failed: 2 errors", state.Message)
}

func TestReduce_StaleUploadFinishedIsDiscarded(t *testing.T) {
	state := readyState(t)
	state = Reduce(state, UploadStarted{Generation: state.Generation})
	staleGeneration := state.Generation

	state = Reduce(state, FileSelected{FileName: "newer.csv"})
	state = Reduce(state, PreviewReady{Generation: state.Generation, Result: validPreview()})
	before := state

	state = Reduce(state, UploadFinished{
		Generation: staleGeneration,
		Outcome:    &domain.UploadOutcome{Primary: domain.UpsertResult{Success: true}, Message: "stale"},
	})

	assert.Equal(t, before, state)
	assert.Equal(t, "newer.csv", state.FileName)
	assert.Nil(t, state.Outcome)
}

func TestReduce_StalePreviewIsDiscarded(t *testing.T) {
	state := Reduce(State{}, FileSelected{FileName: "first.csv"})
	first := state.Generation
	state = Reduce(state, FileSelected{FileName: "second.csv"})

	state = Reduce(state, PreviewReady{Generation: first, Result: validPreview()})

	assert.Equal(t, PhaseParsing, state.Phase)
	assert.Nil(t, state.Preview)
}

func TestReduce_ClearedInvalidatesInFlightUpload(t *testing.T) {
	state := readyState(t)
	state = Reduce(state, UploadStarted{Generation: state.Generation})
	inFlight := state.Generation

	state = Reduce(state, Cleared{})
	assert.Equal(t, PhaseIdle, state.Phase)

	state = Reduce(state, UploadFinished{Generation: inFlight, Outcome: &domain.UploadOutcome{}})
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Nil(t, state.Outcome)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := readyState(t)
	snapshot := state

	_ = Reduce(state, UploadStarted{Generation: state.Generation})
	_ = Reduce(state, Cleared{})

	assert.Equal(t, snapshot, state)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	id, state, err := store.Create("sales.csv", []byte("date,store_id,sku_id,units_sold\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, PhaseParsing, state.Phase)

	_, _, err = store.BeginUpload(id)
	assert.ErrorIs(t, err, ErrUploadNotAllowed)

	state, err = store.Dispatch(id, PreviewReady{Generation: state.Generation, Result: validPreview()})
	require.NoError(t, err)
	require.True(t, state.CanUpload())

	started, content, err := store.BeginUpload(id)
	require.NoError(t, err)
	assert.Equal(t, PhaseUploading, started.Phase)
	assert.Equal(t, "date,store_id,sku_id,units_sold\n", string(content))

	_, _, err = store.BeginUpload(id)
	assert.ErrorIs(t, err, ErrUploadNotAllowed)

	replaced, err := store.Replace(id, "other.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, started.Generation+1, replaced.Generation)

	cleared, err := store.Clear(id)
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, cleared.Phase)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
