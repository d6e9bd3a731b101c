package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"photolib/internal/storage"
	"photolib/internal/storage/mocks"
)

func newTestStore(t *testing.T) (*sql.DB, *storage.PhotoRepo, *storage.ProjectRecord) {
	t.Helper()

	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	project, err := storage.NewProjectRepo(db).Create(context.Background(), "test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return db, storage.NewPhotoRepo(db), project
}

func TestLedger_Admit(t *testing.T) {
	_, photos, project := newTestStore(t)

	persisted := &storage.PhotoRecord{ProjectID: project.ID, URL: "https://example.com/old.jpg"}
	if err := photos.Insert(context.Background(), persisted); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	ledger := NewLedger(project.ID, photos)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "fresh url", url: "https://example.com/new.jpg", want: true},
		{name: "repeat within run", url: "https://example.com/new.jpg", want: false},
		{name: "already persisted", url: "https://example.com/old.jpg", want: false},
		{name: "empty url", url: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ledger.Admit(context.Background(), tt.url)
			if err != nil {
				t.Fatalf("Admit() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Admit(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestLedger_AdmitRetriesAfterStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const url = "https://example.com/flaky.jpg"
	photos := mocks.NewMockPhotoStore(ctrl)
	gomock.InOrder(
		photos.EXPECT().ExistsByURL(gomock.Any(), "p1", url).Return(false, errors.New("database is locked")),
		photos.EXPECT().ExistsByURL(gomock.Any(), "p1", url).Return(false, nil),
	)

	ledger := NewLedger("p1", photos)
	if _, err := ledger.Admit(context.Background(), url); err == nil {
		t.Fatal("Admit() with failing store should return the error")
	}

	// The failed check must not poison the seen-set; the next attempt
	// re-checks the store and admits the URL.
	ok, err := ledger.Admit(context.Background(), url)
	if err != nil {
		t.Fatalf("Admit() retry error = %v", err)
	}
	if !ok {
		t.Error("Admit() retry = false, want true after transient store failure")
	}
}

func TestLedger_ScopedToProject(t *testing.T) {
	db, photos, project := newTestStore(t)

	other, err := storage.NewProjectRepo(db).Create(context.Background(), "other")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := photos.Insert(context.Background(), &storage.PhotoRecord{ProjectID: other.ID, URL: "https://example.com/shared.jpg"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// The same URL in a different project does not block admission.
	ledger := NewLedger(project.ID, photos)
	ok, err := ledger.Admit(context.Background(), "https://example.com/shared.jpg")
	if err != nil {
		t.Fatalf("Admit() error = %v", err)
	}
	if !ok {
		t.Error("Admit() = false for url only present in another project, want true")
	}
}
