package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"photolib/internal/storage"
	"photolib/internal/storage/mocks"
)

func TestParseFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/api/projects/p1/photos?language=pt,es&locale=pt_BR&usage=0,4%2B&source=pixabay&textAmount=none", nil)

	got := parseFilter(req)
	want := storage.PhotoFilter{
		Languages:   []string{"pt", "es"},
		Locales:     []string{"pt_BR"},
		TextAmounts: []string{"none"},
		Usage:       []string{"0", "4+"},
		Source:      "pixabay",
	}

	if len(got.Languages) != 2 || got.Languages[0] != "pt" || got.Languages[1] != "es" {
		t.Errorf("Languages = %v, want %v", got.Languages, want.Languages)
	}
	if len(got.Locales) != 1 || got.Locales[0] != "pt_BR" {
		t.Errorf("Locales = %v, want %v", got.Locales, want.Locales)
	}
	if len(got.Usage) != 2 || got.Usage[1] != "4+" {
		t.Errorf("Usage = %v, want %v", got.Usage, want.Usage)
	}
	if got.Source != "pixabay" {
		t.Errorf("Source = %q, want pixabay", got.Source)
	}
	if len(got.ImageTypes) != 0 {
		t.Errorf("ImageTypes = %v, want empty", got.ImageTypes)
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: defaultPageLimit},
		{name: "explicit", query: "?page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "limit capped", query: "?limit=99999", wantPage: 1, wantLimit: maxPageLimit},
		{name: "negative page", query: "?page=-1", wantPage: 1, wantLimit: defaultPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/photos"+tt.query, nil)
			page, limit := parsePagination(req)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("parsePagination() = %d, %d, want %d, %d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPhotosHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().
		List(gomock.Any(), "p1", gomock.Any(), 2, 10).
		Return([]*storage.PhotoRecord{{ID: "ph1", URL: "https://example.com/a.jpg"}}, 11, nil)
	for _, field := range []string{"language", "locale", "textAmount", "imageType", "source"} {
		mockStore.EXPECT().Distinct(gomock.Any(), "p1", field).Return([]string{"x"}, nil)
	}

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.List(w, newRequest(http.MethodGet, "/api/projects/p1/photos?page=2&limit=10", nil, "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp PhotoListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 11 || resp.Page != 2 || resp.Limit != 10 || len(resp.Photos) != 1 {
		t.Errorf("List response = %+v", resp)
	}
	if len(resp.AvailableFilters.Sources) != 1 {
		t.Errorf("available filters = %+v", resp.AvailableFilters)
	}
}

func TestPhotosHandler_Use(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	least := []*storage.PhotoRecord{
		{ID: "ph1", UsageCount: 0},
		{ID: "ph2", UsageCount: 1},
	}
	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().LeastUsed(gomock.Any(), "p1", 2).Return(least, nil)
	mockStore.EXPECT().IncrementUsage(gomock.Any(), []string{"ph1", "ph2"}).Return(nil)

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.Use(w, newRequest(http.MethodPost, "/api/projects/p1/photos/use", jsonBody(t, UseRequest{Count: 2}), "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Use status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestPhotosHandler_Use_InvalidCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPhotosHandler(mocks.NewMockPhotoStore(ctrl))
	w := httptest.NewRecorder()
	handler.Use(w, newRequest(http.MethodPost, "/api/projects/p1/photos/use", jsonBody(t, UseRequest{Count: 0}), "p1"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Use status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestPhotosHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().DeleteByIDs(gomock.Any(), "p1", []string{"ph1", "ph2"}).Return(2, nil)

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodPost, "/api/projects/p1/photos/delete",
		jsonBody(t, IDListRequest{IDs: []string{"ph1", "ph2"}}), "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Delete status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp map[string]int
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["deleted"] != 2 {
		t.Errorf("deleted = %d, want 2", resp["deleted"])
	}
}

func TestPhotosHandler_Distribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().GroupCount(gomock.Any(), "p1", "locale", distributionLocales).
		Return([]storage.ValueCount{{Value: "ja_JP", Count: 4}}, nil)
	mockStore.EXPECT().GroupCount(gomock.Any(), "p1", "imageType", distributionImageTypes).
		Return([]storage.ValueCount{{Value: "animals", Count: 4}}, nil)

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.Distribution(w, newRequest(http.MethodGet, "/api/projects/p1/photos/distribution", nil, "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Distribution status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp DistributionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Locales) != 1 || resp.Locales[0].Value != "ja_JP" {
		t.Errorf("Distribution response = %+v", resp)
	}
}

func TestPhotosHandler_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	photos := []*storage.PhotoRecord{
		{
			ID: "ph1", URL: "https://example.com/a.jpg", Description: "a cat",
			Language: "pt", Locale: "pt_BR", TextAmount: storage.TextAmountMinimal,
			ImageType: "animals", UsageCount: 3,
			Metadata: map[string]any{"source": "pixabay"},
		},
	}
	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().List(gomock.Any(), "p1", gomock.Any(), 1, maxPageLimit).Return(photos, 1, nil)

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.ExportCSV(w, newRequest(http.MethodGet, "/api/projects/p1/photos/export", nil, "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("ExportCSV status = %v", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}

	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("exported %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "url" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "https://example.com/a.jpg" || rows[1][7] != "pixabay" || rows[1][6] != "3" {
		t.Errorf("row = %v", rows[1])
	}
}

func TestPhotosHandler_ImportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := strings.Join([]string{
		"url,description,language,locale,textAmount,imageType,usageCount,source",
		"https://example.com/new.jpg,a black cat sleeping,pt,pt_BR,,animals,0,pixabay",
		"https://example.com/old.jpg,known,,,,,0,",
		",missing url,,,,,0,",
	}, "\n")

	mockStore := mocks.NewMockPhotoStore(ctrl)
	mockStore.EXPECT().ExistsByURL(gomock.Any(), "p1", "https://example.com/new.jpg").Return(false, nil)
	mockStore.EXPECT().ExistsByURL(gomock.Any(), "p1", "https://example.com/old.jpg").Return(true, nil)
	mockStore.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, record *storage.PhotoRecord) error {
			if record.URL != "https://example.com/new.jpg" {
				t.Errorf("inserted url = %q", record.URL)
			}
			if record.TextAmount != storage.TextAmountModerate {
				t.Errorf("inserted textAmount = %q, want estimated moderate", record.TextAmount)
			}
			if record.Metadata["source"] != "pixabay" {
				t.Errorf("inserted source = %v", record.Metadata["source"])
			}
			return nil
		})

	handler := NewPhotosHandler(mockStore)
	w := httptest.NewRecorder()
	handler.ImportCSV(w, newRequest(http.MethodPost, "/api/projects/p1/photos/import", strings.NewReader(body), "p1"))

	if w.Code != http.StatusOK {
		t.Fatalf("ImportCSV status = %v, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]int
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["imported"] != 1 || resp["skipped"] != 2 {
		t.Errorf("import result = %v, want imported 1, skipped 2", resp)
	}
}

func TestPhotosHandler_ImportCSV_MissingURLColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPhotosHandler(mocks.NewMockPhotoStore(ctrl))
	w := httptest.NewRecorder()
	handler.ImportCSV(w, newRequest(http.MethodPost, "/api/projects/p1/photos/import",
		strings.NewReader("description\nno urls here"), "p1"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("ImportCSV status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}
