package storage

import (
	"context"
	"testing"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project, err := repo.Create(context.Background(), "my project")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if project.ID == "" {
		t.Error("Create() should assign a UUID")
	}
	if project.CreatedAt.IsZero() {
		t.Error("Create() should set CreatedAt")
	}

	got, err := repo.GetByID(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "my project" {
		t.Errorf("GetByID() name = %q, want %q", got.Name, "my project")
	}

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepo_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	if _, err := repo.Create(context.Background(), "taken"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(context.Background(), "taken"); err != ErrDuplicateName {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateName", err)
	}
}

func TestProjectRepo_Rename(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	a, err := repo.Create(context.Background(), "a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(context.Background(), "b"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Rename(context.Background(), a.ID, "renamed"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	got, err := repo.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("name after rename = %q, want %q", got.Name, "renamed")
	}

	if err := repo.Rename(context.Background(), a.ID, "b"); err != ErrDuplicateName {
		t.Errorf("Rename() to taken name error = %v, want ErrDuplicateName", err)
	}
	if err := repo.Rename(context.Background(), "missing", "x"); err != ErrNotFound {
		t.Errorf("Rename() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepo_DeleteRemovesPhotos(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)
	photoRepo := NewPhotoRepo(db)

	project, err := repo.Create(context.Background(), "doomed")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	photo := &PhotoRecord{ProjectID: project.ID, URL: "https://example.com/x.jpg"}
	if err := photoRepo.Insert(context.Background(), photo); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Delete(context.Background(), project.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(context.Background(), project.ID); err != ErrNotFound {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	count, err := photoRepo.Count(context.Background(), project.ID, PhotoFilter{})
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("photo count after project delete = %d, want 0", count)
	}

	if err := repo.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("Delete() unknown id error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepo_ListOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	for _, name := range []string{"first", "second"} {
		if _, err := repo.Create(context.Background(), name); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	projects, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("List() returned %d projects, want 2", len(projects))
	}
}
