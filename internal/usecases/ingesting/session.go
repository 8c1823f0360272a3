package ingesting

import (
	"errors"

	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseParsing    Phase = "parsing"
	PhaseReady      Phase = "ready"
	PhaseInvalid    Phase = "invalid"
	PhaseUploading  Phase = "uploading"
	PhaseUploaded   Phase = "uploaded"
	PhaseFailed     Phase = "failed"
	PhaseParseError Phase = "parse_error"

	// PhaseEmpty is terminal for the file: nothing survived normalization, so only a
	// new file can be uploaded.
	PhaseEmpty Phase = "empty"
)

// State is an immutable snapshot of an upload session. Reduce returns a new value
// and never mutates its input.
type State struct {
	Generation uint64
	Phase      Phase
	FileName   string
	Preview    []Row
	Errors     []domain.ValidationError
	Outcome    *domain.UploadOutcome
	Message    string
}

type Action interface {
	isAction()
}

// FileSelected replaces the session file and invalidates everything in flight.
type FileSelected struct {
	FileName string
}

type PreviewReady struct {
	Generation uint64
	Result     *ParseResult
}

type PreviewFailed struct {
	Generation uint64
	Err        error
}

type UploadStarted struct {
	Generation uint64
}

// UploadFinished carries the outcome of the upload started at Generation.
// Err is set when the upload was rejected or the primary call failed.
type UploadFinished struct {
	Generation uint64
	Outcome    *domain.UploadOutcome
	Err        error
}

// Cleared resets the session and invalidates everything in flight.
type Cleared struct{}

func (FileSelected) isAction()   {}
func (PreviewReady) isAction()   {}
func (PreviewFailed) isAction()  {}
func (UploadStarted) isAction()  {}
func (UploadFinished) isAction() {}
func (Cleared) isAction()        {}

// CanUpload reports whether an upload may start: a non-empty preview without
// validation errors and no upload already running.
func (s State) CanUpload() bool {
	switch s.Phase {
	case PhaseReady, PhaseUploaded, PhaseFailed:
		return len(s.Preview) > 0 && len(s.Errors) == 0
	default:
		return false
	}
}

// Reduce applies action to state. Actions tagged with a generation other than the
// current one are stale and leave the state untouched.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case FileSelected:
		return State{
			Generation: state.Generation + 1,
			Phase:      PhaseParsing,
			FileName:   a.FileName,
		}

	case Cleared:
		return State{
			Generation: state.Generation + 1,
			Phase:      PhaseIdle,
		}

	case PreviewReady:
		if a.Generation != state.Generation || state.Phase != PhaseParsing {
			return state
		}
		next := state
		next.Preview = a.Result.Rows
		next.Errors = a.Result.Errors
		next.Outcome = nil
		next.Message = ""
		next.Phase = PhaseReady
		if len(next.Errors) > 0 || len(next.Preview) == 0 {
			next.Phase = PhaseInvalid
		}
		return next

	case PreviewFailed:
		if a.Generation != state.Generation || state.Phase != PhaseParsing {
			return state
		}
		next := state
		next.Phase = PhaseParseError
		next.Message = a.Err.Error()
		return next

	case UploadStarted:
		if a.Generation != state.Generation || !state.CanUpload() {
			return state
		}
		next := state
		next.Phase = PhaseUploading
		next.Outcome = nil
		next.Message = ""
		return next

	case UploadFinished:
		if a.Generation != state.Generation || state.Phase != PhaseUploading {
			return state
		}
		next := state
		next.Outcome = a.Outcome
		switch {
		case errors.Is(a.Err, domain.ErrNoValidRows):
			next.Phase = PhaseEmpty
			next.Message = UserMessage(a.Err)
		case a.Err != nil:
			next.Phase = PhaseFailed
			next.Message = UserMessage(a.Err)
		case a.Outcome != nil && !a.Outcome.Primary.Success:
			next.Phase = PhaseFailed
			next.Message = a.Outcome.Message
		default:
			next.Phase = PhaseUploaded
			if a.Outcome != nil {
				next.Message = a.Outcome.Message
			}
		}
		return next
	}

	return state
}
