package client

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherhistory.app/pkg/errors"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type fakeCreator struct {
	requests []CreateRequest
	err      error
	// block, when set, is waited on before answering
	block chan struct{}
}

func (f *fakeCreator) Create(_ context.Context, req CreateRequest) (*Record, error) {
	if f.block != nil {
		<-f.block
	}
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &Record{ID: "rec-1", Location: req.Location, Note: req.Note}, nil
}

type fixedLocator struct {
	pos Coordinates
	err error
}

func (l fixedLocator) CurrentPosition(context.Context) (Coordinates, error) {
	return l.pos, l.err
}

func TestLookupForm_SubmitText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		createErr error
		wantState FormState
		wantError string
		wantCalls int
		wantInput string
	}{
		{name: "success", text: "  London ", wantState: FormIdle, wantCalls: 1, wantInput: ""},
		{name: "blank input", text: "   ", wantState: FormError, wantError: MsgEmptyCity, wantCalls: 0, wantInput: "   "},
		{
			name:      "unknown city",
			text:      "Atlantis",
			createErr: errors.NewExternalAPIError("server returned status 500", nil),
			wantState: FormError,
			wantError: MsgCityNotFound,
			wantCalls: 1,
			wantInput: "Atlantis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{err: tt.createErr}
			var results []*Record
			form := NewLookupForm(creator, func(r *Record) { results = append(results, r) })

			err := form.SubmitText(context.Background(), tt.text, "note")

			assert.Equal(t, tt.wantState, form.State())
			assert.Equal(t, tt.wantError, form.Error())
			assert.Equal(t, tt.wantInput, form.Input())
			assert.Len(t, creator.requests, tt.wantCalls)

			if tt.wantError == "" {
				require.NoError(t, err)
				require.Len(t, results, 1)
				assert.Equal(t, "London", creator.requests[0].Location)
				assert.Equal(t, "note", creator.requests[0].Note)
				assert.Nil(t, creator.requests[0].Coordinates)
				return
			}

			var formErr *FormErr
			require.True(t, stderrors.As(err, &formErr))
			assert.Equal(t, tt.wantError, formErr.Message)
			assert.Empty(t, results)
		})
	}
}

func TestLookupForm_SubmitPosition(t *testing.T) {
	denied := stderrors.New("permission denied")

	tests := []struct {
		name      string
		locator   Geolocator
		createErr error
		wantError string
		wantCalls int
	}{
		{name: "success", locator: fixedLocator{pos: Coordinates{Lat: 50.45, Lon: 30.52}}, wantCalls: 1},
		{name: "no geolocation", locator: nil, wantError: MsgNoGeolocation},
		{name: "position denied", locator: fixedLocator{err: denied}, wantError: MsgLocationDenied},
		{
			name:      "request fails",
			locator:   fixedLocator{pos: Coordinates{Lat: 1, Lon: 2}},
			createErr: errors.NewExternalAPIError("boom", nil),
			wantError: MsgPositionLookupFail,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{err: tt.createErr}
			called := false
			form := NewLookupForm(creator, func(*Record) { called = true })
			form.SetInput("draft text")

			err := form.SubmitPosition(context.Background(), tt.locator, "")
			assert.Len(t, creator.requests, tt.wantCalls)
			assert.Equal(t, tt.wantError, form.Error())

			if tt.wantError == "" {
				require.NoError(t, err)
				assert.Equal(t, FormIdle, form.State())
				assert.True(t, called)
				assert.Empty(t, form.Input())
				require.NotNil(t, creator.requests[0].Coordinates)
				assert.Equal(t, Coordinates{Lat: 50.45, Lon: 30.52}, *creator.requests[0].Coordinates)
				assert.Empty(t, creator.requests[0].Location)
				return
			}

			require.Error(t, err)
			assert.Equal(t, FormError, form.State())
			assert.False(t, called)
			assert.Equal(t, "draft text", form.Input())
		})
	}

	t.Run("locator error is kept as cause", func(t *testing.T) {
		form := NewLookupForm(&fakeCreator{}, nil)
		err := form.SubmitPosition(context.Background(), fixedLocator{err: denied}, "")
		assert.ErrorIs(t, err, denied)
	})
}

func TestLookupForm_ErrorClearedOnNextSubmit(t *testing.T) {
	form := NewLookupForm(&fakeCreator{}, nil)

	require.Error(t, form.SubmitText(context.Background(), "", ""))
	assert.Equal(t, MsgEmptyCity, form.Error())

	require.NoError(t, form.SubmitText(context.Background(), "Paris", ""))
	assert.Empty(t, form.Error())
	assert.Equal(t, FormIdle, form.State())
}

func TestLookupForm_RejectsConcurrentSubmit(t *testing.T) {
	creator := &fakeCreator{block: make(chan struct{})}
	form := NewLookupForm(creator, nil)

	done := make(chan error, 1)
	go func() {
		done <- form.SubmitText(context.Background(), "Kyiv", "")
	}()

	require.Eventually(t, func() bool { return form.State() == FormSubmitting }, timeout, tick)

	assert.ErrorIs(t, form.SubmitText(context.Background(), "London", ""), ErrBusy)
	assert.ErrorIs(t, form.SubmitPosition(context.Background(), nil, ""), ErrBusy)
	assert.Equal(t, FormSubmitting, form.State())

	close(creator.block)
	require.NoError(t, <-done)
	assert.Equal(t, FormIdle, form.State())
	require.Len(t, creator.requests, 1)
	assert.Equal(t, "Kyiv", creator.requests[0].Location)
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "idle", FormIdle.String())
	assert.Equal(t, "submitting", FormSubmitting.String())
	assert.Equal(t, "error", FormError.String())
}
