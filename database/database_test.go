package database

import (
	"path/filepath"
	"testing"

	"cafeapi/config"
	"cafeapi/model"
	"cafeapi/store"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseDSN:  filepath.Join(t.TempDir(), "cafes.db"),
		StoreBackend: backend,
	}
}

func TestOpenGormBackend(t *testing.T) {
	s, err := Open(testConfig(t, "gorm"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := s.(*store.GormStore); !ok {
		t.Fatalf("Expected a GormStore, got %T", s)
	}

	cafe := model.Cafe{Name: "Cafe Blue", MapURL: "m", ImgURL: "i", Location: "l"}
	if err := s.Add(&cafe); err != nil {
		t.Fatalf("Add against opened store failed: %v", err)
	}
	cafes, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll against opened store failed: %v", err)
	}
	if len(cafes) != 1 {
		t.Errorf("Expected 1 cafe, got %d", len(cafes))
	}
}

func TestOpenSQLite3Backend(t *testing.T) {
	s, err := Open(testConfig(t, "sqlite3"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := s.(*store.SQLStore); !ok {
		t.Fatalf("Expected a SQLStore, got %T", s)
	}

	cafe := model.Cafe{Name: "Cafe Blue", MapURL: "m", ImgURL: "i", Location: "l"}
	if err := s.Add(&cafe); err != nil {
		t.Fatalf("Add against opened store failed: %v", err)
	}
	if _, err := s.FindByName("Cafe Blue"); err != nil {
		t.Errorf("FindByName against opened store failed: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(testConfig(t, "mongodb")); err == nil {
		t.Fatal("Expected an error for an unknown backend")
	}
}

func TestOpenSQLite3RejectsPostgresDSN(t *testing.T) {
	dsns := []string{
		"host=localhost user=postgres dbname=cafe",
		"user=postgres host=localhost dbname=cafe",
		"postgres://postgres@localhost/cafe",
		"postgresql://postgres@localhost/cafe",
	}
	for _, dsn := range dsns {
		cfg := &config.Config{DatabaseDSN: dsn, StoreBackend: "sqlite3"}
		if _, err := Open(cfg); err == nil {
			t.Errorf("DSN %q: expected a startup error, got nil", dsn)
		}
	}
}

func TestIsPostgresDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"host=localhost user=postgres", true},
		{"user=postgres host=localhost", true},
		{"postgres://postgres@localhost/cafe", true},
		{"postgresql://postgres@localhost/cafe", true},
		{"instance/cafes.db", false},
		{"cafes.db", false},
	}
	for _, c := range cases {
		if got := isPostgresDSN(c.dsn); got != c.want {
			t.Errorf("isPostgresDSN(%q) = %v, want %v", c.dsn, got, c.want)
		}
	}
}
