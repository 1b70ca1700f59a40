package cart

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAddItem_AtomicUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id, product_id)`)).
		WithArgs("u-1", "p-1", 2, "2026-09-01T00:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddItem(context.Background(), "u-1", "p-1", 2, "2026-09-01T00:00:00Z"); err != nil {
		t.Fatal(err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "product_id", "quantity", "added_at"}).
		AddRow("u-1", "p-1", 4, "2026-08-01T00:00:00Z").
		AddRow("u-1", "p-2", 1, "2026-08-02T00:00:00Z")
	mock.ExpectQuery("FROM cart_items").WithArgs("u-1").WillReturnRows(rows)

	lines, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Quantity != 4 {
		t.Fatalf("expected merged quantity 4, got %d", lines[0].Quantity)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
