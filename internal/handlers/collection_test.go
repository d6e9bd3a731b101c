package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"photolib/internal/catalog"
	"photolib/internal/sources"
	"photolib/internal/storage"
	"photolib/internal/storage/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalogService(photos storage.PhotoStore, projects storage.ProjectStore, target int) *catalog.Service {
	registry := sources.NewRegistry()
	orch := catalog.NewOrchestrator(photos, registry, testLogger(), target, 0)
	return catalog.NewService(photos, projects, registry, sources.NewScraper(), orch, testLogger())
}

func TestCollectionHandler_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotos := mocks.NewMockPhotoStore(ctrl)
	mockProjects := mocks.NewMockProjectStore(ctrl)
	mockProjects.EXPECT().GetByID(gomock.Any(), "p1").
		Return(&storage.ProjectRecord{ID: "p1"}, nil)

	svc := newCatalogService(mockPhotos, mockProjects, 936)
	handler := NewCollectionHandler(svc)

	w := httptest.NewRecorder()
	handler.Start(w, newRequest(http.MethodPost, "/api/projects/p1/collect", nil, "p1"))

	if w.Code != http.StatusAccepted {
		t.Fatalf("Start status = %v, want %v", w.Code, http.StatusAccepted)
	}
	var resp StartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message == "" || resp.Target != 936 || resp.Languages != 39 || resp.Categories != 12 {
		t.Errorf("Start response = %+v", resp)
	}

	// The background run has an empty registry and finishes on its own.
	deadline := time.Now().Add(5 * time.Second)
	for svc.RunActive("p1") {
		if time.Now().After(deadline) {
			t.Fatal("run did not finish")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCollectionHandler_Start_UnknownProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotos := mocks.NewMockPhotoStore(ctrl)
	mockProjects := mocks.NewMockProjectStore(ctrl)
	mockProjects.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	handler := NewCollectionHandler(newCatalogService(mockPhotos, mockProjects, 936))
	w := httptest.NewRecorder()
	handler.Start(w, newRequest(http.MethodPost, "/api/projects/missing/collect", nil, "missing"))

	if w.Code != http.StatusNotFound {
		t.Errorf("Start status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCollectionHandler_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotos := mocks.NewMockPhotoStore(ctrl)
	mockProjects := mocks.NewMockProjectStore(ctrl)

	handler := NewCollectionHandler(newCatalogService(mockPhotos, mockProjects, 936))
	w := httptest.NewRecorder()
	handler.Stop(w, newRequest(http.MethodPost, "/api/projects/p1/collect/stop", nil, "p1"))

	if w.Code != http.StatusNotFound {
		t.Errorf("Stop without active run status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCollectionHandler_StopActiveRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotos := mocks.NewMockPhotoStore(ctrl)
	mockProjects := mocks.NewMockProjectStore(ctrl)
	mockProjects.EXPECT().GetByID(gomock.Any(), "p1").
		Return(&storage.ProjectRecord{ID: "p1"}, nil)

	blocked := make(chan struct{})
	src := &blockingSource{done: blocked}
	registry := sources.NewRegistry(src)
	orch := catalog.NewOrchestrator(mockPhotos, registry, testLogger(), 936, 0)
	svc := catalog.NewService(mockPhotos, mockProjects, registry, sources.NewScraper(), orch, testLogger())
	handler := NewCollectionHandler(svc)

	w := httptest.NewRecorder()
	handler.Start(w, newRequest(http.MethodPost, "/api/projects/p1/collect", nil, "p1"))
	if w.Code != http.StatusAccepted {
		t.Fatalf("Start status = %v, want %v", w.Code, http.StatusAccepted)
	}

	w = httptest.NewRecorder()
	handler.Stop(w, newRequest(http.MethodPost, "/api/projects/p1/collect/stop", nil, "p1"))
	if w.Code != http.StatusAccepted {
		t.Fatalf("Stop status = %v, want %v", w.Code, http.StatusAccepted)
	}

	deadline := time.Now().Add(10 * time.Second)
	for svc.RunActive("p1") {
		if time.Now().After(deadline) {
			t.Fatal("run did not stop")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// blockingSource stalls every fetch until its context is cancelled.
type blockingSource struct {
	done chan struct{}
}

func (s *blockingSource) Name() string        { return "unsplash" }
func (s *blockingSource) NeedsLanguage() bool { return false }

func (s *blockingSource) Fetch(ctx context.Context, _, _ string, _ int) ([]sources.Candidate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return nil, nil
	}
}

func TestCollectionHandler_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotos := mocks.NewMockPhotoStore(ctrl)
	mockProjects := mocks.NewMockProjectStore(ctrl)
	mockPhotos.EXPECT().Count(gomock.Any(), "p1", storage.PhotoFilter{}).Return(468, nil)
	mockPhotos.EXPECT().GroupCount(gomock.Any(), "p1", "locale", 0).
		Return([]storage.ValueCount{{Value: "ja_JP", Count: 468}}, nil)
	mockPhotos.EXPECT().GroupCount(gomock.Any(), "p1", "imageType", 0).
		Return([]storage.ValueCount{{Value: "animals", Count: 468}}, nil)
	mockPhotos.EXPECT().GroupCount(gomock.Any(), "p1", "source", 0).
		Return([]storage.ValueCount{{Value: "pixabay", Count: 468}}, nil)

	handler := NewCollectionHandler(newCatalogService(mockPhotos, mockProjects, 936))
	w := httptest.NewRecorder()
	handler.Progress(w, newRequest(http.MethodGet, "/api/projects/p1/collection-progress", nil, "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Progress status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp catalog.ProgressReport
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalImages != 468 || resp.Target != 936 || resp.Progress != 50 {
		t.Errorf("Progress response = %+v", resp)
	}
}
