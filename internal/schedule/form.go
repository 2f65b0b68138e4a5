package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/utils"

	"github.com/google/uuid"
)

// Draft holds the editable fields of a single appointment. An empty ID marks
// an unsaved record.
type Draft struct {
	ID         string    `json:"id"`
	Title      string    `json:"title" validate:"required"`
	Start      time.Time `json:"start" validate:"required"`
	End        time.Time `json:"end" validate:"required,gtfield=Start"`
	BarberID   string    `json:"barberId" validate:"required"`
	ClientName string    `json:"clientName" validate:"required"`
	Notes      string    `json:"notes"`
}

// DraftFromAppointment pre-fills a draft from an existing record.
func DraftFromAppointment(a models.Appointment) Draft {
	return Draft{
		ID:         a.ID,
		Title:      a.Title,
		Start:      a.Start,
		End:        a.End,
		BarberID:   a.BarberID,
		ClientName: a.ClientName,
		Notes:      a.Notes,
	}
}

// Appointment converts the draft back into a store record.
func (d Draft) Appointment() models.Appointment {
	return models.Appointment{
		BaseModel:  models.BaseModel{ID: d.ID},
		Title:      d.Title,
		Start:      d.Start,
		End:        d.End,
		BarberID:   d.BarberID,
		ClientName: d.ClientName,
		Notes:      d.Notes,
	}
}

// ValidateDraft checks the required fields and the start/end ordering,
// returning one message per offending field. An empty map means the draft can
// be saved.
func ValidateDraft(d Draft) map[string]string {
	if err := utils.Validate(d); err != nil {
		fields := utils.FieldErrors(err)
		if _, ok := fields["End"]; ok && !d.End.IsZero() {
			fields["End"] = "End time must be after the start time."
		}
		return fields
	}
	return nil
}

// Saver persists an appointment at the service boundary. The call may be
// slow; it must honor the context.
type Saver interface {
	Save(ctx context.Context, appt models.Appointment) (models.Appointment, error)
}

// Deleter removes an appointment at the service boundary.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// FormState tracks where a form instance is in its lifecycle.
type FormState int

const (
	StateClosed FormState = iota
	StateOpen
	StateSubmitting
	StateDeleteConfirm
)

// FormMode distinguishes creating a new appointment from editing one.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

var (
	// ErrFormNotOpen is returned when an operation needs an open form.
	ErrFormNotOpen = errors.New("form is not open")
	// ErrValidation is returned when required fields are missing or invalid;
	// per-field messages are available via FieldErrors.
	ErrValidation = errors.New("draft failed validation")
	// ErrStaleResponse is returned when a save or delete completed after the
	// form was already closed; the response is discarded.
	ErrStaleResponse = errors.New("form closed before the response arrived")
	// ErrNotEditing is returned when delete is requested outside edit mode.
	ErrNotEditing = errors.New("delete is only available while editing")
)

// Form is the create/edit modal's state machine. Only one instance is open at
// a time; the mutex exists so a cancel arriving while a save is in flight
// cannot race the response.
type Form struct {
	mu          sync.Mutex
	user        models.User
	state       FormState
	mode        FormMode
	draft       Draft
	fieldErrors map[string]string
	formError   string
	saveTimeout time.Duration
	generation  uint64
}

// NewForm returns a closed form for the active user. saveTimeout bounds every
// save and delete round-trip.
func NewForm(user models.User, saveTimeout time.Duration) *Form {
	return &Form{user: user, state: StateClosed, saveTimeout: saveTimeout}
}

// OpenCreate opens the form on a fresh draft, e.g. one produced by a calendar
// slot intent.
func (f *Form) OpenCreate(draft Draft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draft.ID = ""
	f.open(ModeCreate, draft)
}

// OpenEdit opens the form pre-filled from an existing record.
func (f *Form) OpenEdit(appt models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open(ModeEdit, DraftFromAppointment(appt))
}

func (f *Form) open(mode FormMode, draft Draft) {
	// Barbers cannot reassign appointments to someone else.
	if f.user.Role == models.RoleBarber {
		draft.BarberID = f.user.ID
	}
	f.state = StateOpen
	f.mode = mode
	f.draft = draft
	f.fieldErrors = nil
	f.formError = ""
	f.generation++
}

// Update replaces the draft while the form is open.
func (f *Form) Update(draft Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateOpen {
		return ErrFormNotOpen
	}
	draft.ID = f.draft.ID // the identifier is not editable
	if f.user.Role == models.RoleBarber {
		draft.BarberID = f.user.ID
	}
	f.draft = draft
	return nil
}

// SetClient fills the client name field, typically from a lookup selection.
func (f *Form) SetClient(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateOpen {
		return ErrFormNotOpen
	}
	f.draft.ClientName = name
	return nil
}

// Cancel closes the form from any open state. A save or delete still in
// flight will find the generation changed and discard its response.
func (f *Form) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateClosed
	f.draft = Draft{}
	f.fieldErrors = nil
	f.formError = ""
	f.generation++
}

// Submit validates the draft and hands it to the saver. Missing required
// fields block the save and populate FieldErrors. A new record gets its ID
// generated here, before the store ever sees it. On a saver error the form
// stays open and populated for retry.
func (f *Form) Submit(ctx context.Context, saver Saver) (models.Appointment, error) {
	f.mu.Lock()
	if f.state != StateOpen {
		f.mu.Unlock()
		return models.Appointment{}, ErrFormNotOpen
	}

	draft := f.draft
	if errs := ValidateDraft(draft); len(errs) > 0 {
		f.fieldErrors = errs
		f.formError = "Please fill in all required fields."
		f.mu.Unlock()
		return models.Appointment{}, ErrValidation
	}
	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}

	f.state = StateSubmitting
	f.fieldErrors = nil
	f.formError = ""
	gen := f.generation
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, f.saveTimeout)
	defer cancel()
	saved, err := saver.Save(ctx, draft.Appointment())

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen {
		// The form was closed mid-submit; the response must not touch it.
		return models.Appointment{}, ErrStaleResponse
	}
	if err != nil {
		f.state = StateOpen
		f.formError = "Could not save the appointment. Please try again."
		return models.Appointment{}, err
	}
	f.state = StateClosed
	f.draft = Draft{}
	return saved, nil
}

// RequestDelete moves an edit form into the confirmation step. Deleting
// always requires an explicit confirm so a single misclick cannot drop data.
func (f *Form) RequestDelete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateOpen {
		return ErrFormNotOpen
	}
	if f.mode != ModeEdit {
		return ErrNotEditing
	}
	f.state = StateDeleteConfirm
	return nil
}

// CancelDelete abandons the confirmation step and returns to editing.
func (f *Form) CancelDelete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateDeleteConfirm {
		return ErrFormNotOpen
	}
	f.state = StateOpen
	return nil
}

// ConfirmDelete performs the delete and closes the form. It is only reachable
// after RequestDelete.
func (f *Form) ConfirmDelete(ctx context.Context, deleter Deleter) error {
	f.mu.Lock()
	if f.state != StateDeleteConfirm {
		f.mu.Unlock()
		return ErrFormNotOpen
	}
	id := f.draft.ID
	gen := f.generation
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, f.saveTimeout)
	defer cancel()
	err := deleter.Delete(ctx, id)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen {
		return ErrStaleResponse
	}
	if err != nil {
		f.state = StateOpen
		f.formError = "Could not delete the appointment. Please try again."
		return err
	}
	f.state = StateClosed
	f.draft = Draft{}
	return nil
}

// State reports the current lifecycle state.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Mode reports whether the form is creating or editing.
func (f *Form) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// FieldErrors returns the per-field messages from the last failed submit.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors
}

// Error returns the banner message from the last failed submit or delete.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formError
}
