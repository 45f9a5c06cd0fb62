package event

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"cafedeslettres/internal/activity/activitytest"
	"cafedeslettres/internal/testutil"
)

func TestHTTPHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	newReq := func() *http.Request {
		r := testutil.AsUser(httptest.NewRequest(http.MethodPost, "/v1/events/"+testutil.TestEventID+"/registrations", nil), testutil.TestUserID)
		r.SetPathValue("id", testutil.TestEventID)
		return r
	}

	tests := []struct {
		name     string
		repoErr  error
		wantCode int
		wantErr  string
	}{
		{"registered", nil, http.StatusCreated, ""},
		{"duplicate", ErrAlreadyRegistered, http.StatusConflict, "ALREADY_REGISTERED"},
		{"unknown event", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().Register(gomock.Any(), testutil.TestEventID, testutil.TestUserID).Return("Soirée", tt.repoErr)

			w := httptest.NewRecorder()
			handler.Register(w, newReq())

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, testutil.ErrorCode(t, w))
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/events/"+testutil.TestEventID+"/registrations", nil)
		r.SetPathValue("id", testutil.TestEventID)
		handler.Register(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPHandler_Unregister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	newReq := func() *http.Request {
		r := testutil.AsUser(httptest.NewRequest(http.MethodDelete, "/v1/events/"+testutil.TestEventID+"/registrations", nil), testutil.TestUserID)
		r.SetPathValue("id", testutil.TestEventID)
		return r
	}

	repo.EXPECT().Unregister(gomock.Any(), testutil.TestEventID, testutil.TestUserID).Return(nil)
	w := httptest.NewRecorder()
	handler.Unregister(w, newReq())
	assert.Equal(t, http.StatusNoContent, w.Code)

	repo.EXPECT().Unregister(gomock.Any(), testutil.TestEventID, testutil.TestUserID).Return(ErrNotRegistered)
	w = httptest.NewRecorder()
	handler.Unregister(w, newReq())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q Query) ([]Event, error) {
		assert.Equal(t, WhenPast, q.When)
		return []Event{{ID: "e1", Title: "Lecture publique"}}, nil
	})

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/v1/events?when=past", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_virtual":true`)
	assert.Contains(t, w.Body.String(), `"when":"past"`)
}
