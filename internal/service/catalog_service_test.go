package service

import (
	"errors"
	"testing"
)

func TestCatalogServiceCRUD(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewCatalogService(gdb)
	web, err := svc.Create(ServiceInput{Title: "Web", Description: "Sites", Icon: "/media/web.svg"})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	if _, err := svc.Create(ServiceInput{Title: "Mobile", Description: "Apps"}); err != nil {
		t.Fatalf("create second service: %v", err)
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Web" || list[1].Title != "Mobile" {
		t.Fatalf("unexpected list: %#v", list)
	}

	updated, err := svc.Update(web.ID, ServiceInput{Title: "Web design", Description: "Sites"})
	if err != nil {
		t.Fatalf("update service: %v", err)
	}
	if updated.Title != "Web design" || updated.Icon != "" {
		t.Fatalf("unexpected update result: %#v", updated)
	}

	if err := svc.Delete(web.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	if _, err := svc.Get(web.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if err := svc.Delete(web.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound on second delete, got %v", err)
	}
}

func TestCatalogServiceValidation(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewCatalogService(gdb)
	if _, err := svc.Create(ServiceInput{Title: "Web"}); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Update(42, ServiceInput{Title: "Web", Description: "x"}); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
