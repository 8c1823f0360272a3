package ingesting

import "github.com/vfg2006/smart-inventory-api/internal/domain"

// SessionView is the JSON shape of a session returned by the API.
type SessionView struct {
	ID         string                   `json:"id"`
	Generation uint64                   `json:"generation"`
	Phase      Phase                    `json:"phase"`
	FileName   string                   `json:"file_name,omitempty"`
	Rows       []RowView                `json:"rows"`
	Errors     []domain.ValidationError `json:"errors"`
	CanUpload  bool                     `json:"can_upload"`
	Outcome    *domain.UploadOutcome    `json:"outcome,omitempty"`
	Message    string                   `json:"message,omitempty"`
}

type RowView struct {
	Row    int                      `json:"row"`
	Valid  bool                     `json:"valid"`
	Data   RawRow                   `json:"data"`
	Errors []domain.ValidationError `json:"errors,omitempty"`
}

func NewSessionView(id string, state State) *SessionView {
	view := &SessionView{
		ID:         id,
		Generation: state.Generation,
		Phase:      state.Phase,
		FileName:   state.FileName,
		Rows:       make([]RowView, 0, len(state.Preview)),
		Errors:     state.Errors,
		CanUpload:  state.CanUpload(),
		Outcome:    state.Outcome,
		Message:    state.Message,
	}
	if view.Errors == nil {
		view.Errors = []domain.ValidationError{}
	}

	for _, row := range state.Preview {
		rv := RowView{Row: row.Number(), Data: row.Raw()}
		switch r := row.(type) {
		case ValidRow:
			rv.Valid = true
		case InvalidRow:
			rv.Errors = r.Errors
		}
		view.Rows = append(view.Rows, rv)
	}

	return view
}
