package readinglist

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"cafedeslettres/internal/activity/activitytest"
	"cafedeslettres/internal/testutil"
)

func TestHTTPHandler_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	newReq := func(body any) *http.Request {
		r := testutil.AsUser(testutil.NewRequest(http.MethodPut, "/v1/me/books/"+testutil.TestBookID, body), testutil.TestUserID)
		r.SetPathValue("bookID", testutil.TestBookID)
		return r
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().Upsert(gomock.Any(), testutil.TestUserID, testutil.TestBookID, StatusFinished, gomock.Any()).
			Return(Entry{BookID: testutil.TestBookID, Status: StatusFinished}, false, nil)

		w := httptest.NewRecorder()
		handler.Upsert(w, newReq(map[string]any{"status": "finished", "rating": 5}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"finished"`)
	})

	t.Run("bad status", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Upsert(w, newReq(map[string]any{"status": "abandoned"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", testutil.ErrorCode(t, w))
	})

	t.Run("unknown book", func(t *testing.T) {
		repo.EXPECT().Upsert(gomock.Any(), testutil.TestUserID, testutil.TestBookID, StatusReading, gomock.Any()).
			Return(Entry{}, false, ErrBookNotFound)

		w := httptest.NewRecorder()
		handler.Upsert(w, newReq(map[string]any{"status": "reading"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	repo.EXPECT().List(gomock.Any(), testutil.TestUserID, StatusReading).Return([]Entry{{BookID: "b1"}}, nil)
	w := httptest.NewRecorder()
	r := testutil.AsUser(httptest.NewRequest(http.MethodGet, "/v1/me/books?status=reading", nil), testutil.TestUserID)
	handler.List(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r = testutil.AsUser(httptest.NewRequest(http.MethodGet, "/v1/me/books?status=lost", nil), testutil.TestUserID)
	handler.List(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPHandler_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(repo, &activitytest.Recorder{}))

	newReq := func() *http.Request {
		r := testutil.AsUser(httptest.NewRequest(http.MethodDelete, "/v1/me/books/"+testutil.TestBookID, nil), testutil.TestUserID)
		r.SetPathValue("bookID", testutil.TestBookID)
		return r
	}

	repo.EXPECT().Remove(gomock.Any(), testutil.TestUserID, testutil.TestBookID).Return(ErrNotFound)
	w := httptest.NewRecorder()
	handler.Remove(w, newReq())
	assert.Equal(t, http.StatusNotFound, w.Code)

	repo.EXPECT().Remove(gomock.Any(), testutil.TestUserID, testutil.TestBookID).Return(nil)
	w = httptest.NewRecorder()
	handler.Remove(w, newReq())
	assert.Equal(t, http.StatusNoContent, w.Code)
}
