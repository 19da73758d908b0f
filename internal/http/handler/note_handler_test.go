package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/sandeepkv93/notes-ai-backend/internal/domain"
	"github.com/sandeepkv93/notes-ai-backend/internal/repository"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
	servicegomock "github.com/sandeepkv93/notes-ai-backend/internal/service/gomock"
)

func newNoteRouterForTest(t *testing.T, accountID uint) (http.Handler, *servicegomock.MockNoteServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockNoteServiceInterface(ctrl)
	h := NewNoteHandler(svc)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if accountID != 0 {
				req = withAccount(req, accountID)
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Post("/notes", h.Create)
	r.Get("/notes", h.List)
	r.Get("/notes/fetchAllNotes", h.ListAll)
	r.Get("/notes/{id}", h.Get)
	r.Put("/notes/{id}", h.Update)
	r.Delete("/notes/{id}", h.Delete)
	return r, svc
}

func TestCreateNote(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().Create(gomock.Any(), uint(7), service.NoteInput{Title: "Groceries", Description: "milk"}).
		Return(&domain.Note{ID: 3, Title: "Groceries", Description: "milk", CreatedBy: 7}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, jsonRequest(http.MethodPost, "/notes", `{"title":"Groceries","description":"milk"}`))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	note, _ := body["note"].(map[string]any)
	if body["message"] != "Note created successfully" || note["id"] != float64(3) {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestCreateNoteValidationMessage(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().Create(gomock.Any(), uint(7), gomock.Any()).Return(nil, service.ValidationError("Title and description are required"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, jsonRequest(http.MethodPost, "/notes", `{"title":""}`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Title and description are required" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestCreateNoteWithoutClaims(t *testing.T) {
	router, _ := newNoteRouterForTest(t, 0)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, jsonRequest(http.MethodPost, "/notes", `{"title":"a","description":"b"}`))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestListNotesPaginates(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().List(gomock.Any(), uint(7), repository.PageRequest{Page: 2, PageSize: 5}).Return(repository.PageResult[domain.Note]{
		Items:      []domain.Note{{ID: 6, Title: "x", Description: "y", CreatedBy: 7}},
		Page:       2,
		PageSize:   5,
		Total:      6,
		TotalPages: 2,
	}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes?page=2&page_size=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	notes, _ := body["notes"].([]any)
	if len(notes) != 1 {
		t.Fatalf("expected one note, got %#v", body["notes"])
	}
	meta, _ := body["pagination"].(map[string]any)
	if meta["total"] != float64(6) || meta["total_pages"] != float64(2) {
		t.Fatalf("unexpected pagination: %#v", meta)
	}
}

func TestListNotesEmptyIsArray(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().List(gomock.Any(), uint(7), gomock.Any()).Return(repository.PageResult[domain.Note]{
		Items: []domain.Note{}, Page: 1, PageSize: 20,
	}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if notes, ok := decodeBody(t, rr)["notes"].([]any); !ok || len(notes) != 0 {
		t.Fatalf("expected empty array, got %s", rr.Body.String())
	}
}

func TestListNotesRejectsBadPageSize(t *testing.T) {
	router, _ := newNoteRouterForTest(t, 7)
	for _, q := range []string{"page=0", "page_size=abc", "page_size=1000"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes?"+q, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, rr.Code)
		}
	}
}

func TestGetNoteNotFound(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().Get(gomock.Any(), uint(7), uint(99)).Return(nil, service.NotFoundError("Note not found"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes/99", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Note not found" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestNoteRoutesRejectBadID(t *testing.T) {
	router, _ := newNoteRouterForTest(t, 7)
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/notes/abc", nil),
		jsonRequest(http.MethodPut, "/notes/0", `{"title":"a","description":"b"}`),
		httptest.NewRequest(http.MethodDelete, "/notes/-1", nil),
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", req.Method, req.URL.Path, rr.Code)
		}
	}
}

func TestUpdateNote(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().Update(gomock.Any(), uint(7), uint(3), service.NoteInput{Title: "New", Description: "body"}).
		Return(&domain.Note{ID: 3, Title: "New", Description: "body", CreatedBy: 7}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, jsonRequest(http.MethodPut, "/notes/3", `{"title":"New","description":"body"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Note updated successfully" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestDeleteNote(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().Delete(gomock.Any(), uint(7), uint(3)).Return(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notes/3", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if msg := decodeBody(t, rr)["message"]; msg != "Note deleted successfully" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestDeleteNoteOwnedByAnotherAccount(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 8)
	svc.EXPECT().Delete(gomock.Any(), uint(8), uint(3)).Return(service.NotFoundError("Note not found"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/notes/3", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListAllNotesSkipsPaging(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	notes := make([]domain.Note, 0, 30)
	for i := 1; i <= 30; i++ {
		notes = append(notes, domain.Note{ID: uint(i), Title: "t", Description: "d", CreatedBy: 7})
	}
	svc.EXPECT().ListAll(gomock.Any(), uint(7)).Return(notes, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes/fetchAllNotes", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if got, _ := body["notes"].([]any); len(got) != 30 {
		t.Fatalf("expected 30 notes, got %d", len(got))
	}
	if _, ok := body["pagination"]; ok {
		t.Fatalf("unexpected pagination: %#v", body["pagination"])
	}
}

func TestListAllNotesHonoursExplicitPage(t *testing.T) {
	router, svc := newNoteRouterForTest(t, 7)
	svc.EXPECT().List(gomock.Any(), uint(7), repository.PageRequest{Page: 1, PageSize: 5}).
		Return(repository.PageResult[domain.Note]{Items: []domain.Note{}, Page: 1, PageSize: 5}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notes/fetchAllNotes?page_size=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if _, ok := decodeBody(t, rr)["pagination"]; !ok {
		t.Fatal("expected pagination for an explicit page request")
	}
}
