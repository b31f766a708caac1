package client

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
)

// FormState is the lookup form's current state
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormError
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormError:
		return "error"
	default:
		return "idle"
	}
}

// Messages shown by the lookup form
const (
	MsgEmptyCity          = "Please enter a city name"
	MsgCityNotFound       = "City not found. Please check the spelling and try again."
	MsgNoGeolocation      = "Geolocation is not supported by this browser"
	MsgLocationDenied     = "Unable to access your location. Please enter a city name instead."
	MsgPositionLookupFail = "Failed to fetch weather data for your location"
)

// ErrBusy is returned when a submit is attempted while another one is in flight
var ErrBusy = stderrors.New("lookup already in progress")

// Geolocator provides the device position
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// Creator is the part of Client the form needs
type Creator interface {
	Create(ctx context.Context, req CreateRequest) (*Record, error)
}

// LookupForm holds the input text and submission state of the lookup screen
type LookupForm struct {
	creator  Creator
	onResult func(*Record)

	mu    sync.Mutex
	state FormState
	input string
	err   string
}

// NewLookupForm creates a form that posts through creator and hands each new record to onResult
func NewLookupForm(creator Creator, onResult func(*Record)) *LookupForm {
	return &LookupForm{creator: creator, onResult: onResult}
}

// SetInput replaces the text field contents
func (f *LookupForm) SetInput(text string) {
	f.mu.Lock()
	f.input = text
	f.mu.Unlock()
}

// Input returns the text field contents
func (f *LookupForm) Input() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// State returns the current state
func (f *LookupForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Error returns the message to display, empty unless State is FormError
func (f *LookupForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// SubmitText looks up the typed city name
func (f *LookupForm) SubmitText(ctx context.Context, text, note string) error {
	if err := f.begin(text); err != nil {
		return err
	}

	name := strings.TrimSpace(text)
	if name == "" {
		return f.fail(MsgEmptyCity, nil)
	}

	rec, err := f.creator.Create(ctx, CreateRequest{Location: name, Note: note})
	if err != nil {
		return f.fail(MsgCityNotFound, err)
	}
	f.succeed(rec)
	return nil
}

// SubmitPosition looks up the weather at the device position
func (f *LookupForm) SubmitPosition(ctx context.Context, locator Geolocator, note string) error {
	if err := f.begin(f.Input()); err != nil {
		return err
	}

	if locator == nil {
		return f.fail(MsgNoGeolocation, nil)
	}
	pos, err := locator.CurrentPosition(ctx)
	if err != nil {
		return f.fail(MsgLocationDenied, err)
	}

	rec, err := f.creator.Create(ctx, CreateRequest{Coordinates: &pos, Note: note})
	if err != nil {
		return f.fail(MsgPositionLookupFail, err)
	}
	f.succeed(rec)
	return nil
}

// begin moves to submitting and clears any previous error
func (f *LookupForm) begin(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return ErrBusy
	}
	f.state = FormSubmitting
	f.input = text
	f.err = ""
	return nil
}

func (f *LookupForm) fail(message string, cause error) error {
	f.mu.Lock()
	f.state = FormError
	f.err = message
	f.mu.Unlock()

	if cause != nil {
		return &FormErr{Message: message, Cause: cause}
	}
	return &FormErr{Message: message}
}

func (f *LookupForm) succeed(rec *Record) {
	f.mu.Lock()
	f.state = FormIdle
	f.input = ""
	f.mu.Unlock()

	if f.onResult != nil {
		f.onResult(rec)
	}
}

// FormErr is a failed submission with the message the form displays
type FormErr struct {
	Message string
	Cause   error
}

func (e *FormErr) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *FormErr) Unwrap() error {
	return e.Cause
}
