package services

import (
	"errors"
	"testing"

	"github.com/homemanager/homemanager/internal/model"
)

func TestCreateBookDefaultsToToRead(t *testing.T) {
	e := newEnv()
	rec, err := e.books.Create(CreateBookRequest{Title: "The Go Programming Language", Author: "Donovan", TotalPages: 380})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Status != model.BookToRead {
		t.Fatalf("expected to-read, got %q", rec.Status)
	}
	if rec.CurrentPage != 0 || rec.FinishDate != nil {
		t.Fatalf("fresh book carries progress: %+v", rec)
	}
}

func TestCreateBookValidation(t *testing.T) {
	e := newEnv()
	if _, err := e.books.Create(CreateBookRequest{Title: "", Author: "x"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("blank title: %v", err)
	}
	bad := 6
	if _, err := e.books.Create(CreateBookRequest{Title: "t", Author: "a", Rating: &bad}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("rating out of range: %v", err)
	}
}

func TestUpdateProgressFinishesAtLastPage(t *testing.T) {
	e := newEnv()
	rec, _ := e.books.Create(CreateBookRequest{Title: "Novel", Author: "A", TotalPages: 300})

	mid, err := e.books.UpdateProgress(rec.ID, 120)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if mid.Status != model.BookReading || mid.CurrentPage != 120 {
		t.Fatalf("expected reading at page 120, got %+v", mid)
	}
	if mid.FinishDate != nil {
		t.Fatal("finish date set before the last page")
	}

	done, err := e.books.UpdateProgress(rec.ID, 300)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if done.Status != model.BookCompleted {
		t.Fatalf("expected completed, got %q", done.Status)
	}
	if done.FinishDate == nil {
		t.Fatal("completion must stamp the finish date")
	}
	if done.CurrentPage != 300 {
		t.Fatalf("expected page 300, got %d", done.CurrentPage)
	}
}

func TestUpdateProgressClampsPastTheEnd(t *testing.T) {
	e := newEnv()
	rec, _ := e.books.Create(CreateBookRequest{Title: "Short", Author: "A", TotalPages: 100})
	out, err := e.books.UpdateProgress(rec.ID, 250)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if out.CurrentPage != 100 || out.Status != model.BookCompleted {
		t.Fatalf("expected clamp to 100 and completed, got %+v", out)
	}
}

func TestUpdateProgressReopensCompletedBook(t *testing.T) {
	e := newEnv()
	rec, _ := e.books.Create(CreateBookRequest{Title: "Reread", Author: "A", TotalPages: 200})
	done, _ := e.books.UpdateProgress(rec.ID, 200)
	first := done.FinishDate

	back, err := e.books.UpdateProgress(rec.ID, 10)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if back.Status != model.BookReading {
		t.Fatalf("expected reading after stepping back, got %q", back.Status)
	}
	if back.FinishDate == nil || !back.FinishDate.Equal(*first) {
		t.Fatal("stepping back must leave the earlier finish date in place")
	}

	again, _ := e.books.UpdateProgress(rec.ID, 200)
	if again.FinishDate == nil || !again.FinishDate.After(*first) {
		t.Fatal("re-finishing must stamp a fresh finish date")
	}
}

func TestUpdateProgressZeroTotalPagesCompletesImmediately(t *testing.T) {
	e := newEnv()
	rec, _ := e.books.Create(CreateBookRequest{Title: "Unknown length", Author: "A"})
	out, err := e.books.UpdateProgress(rec.ID, 50)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if out.CurrentPage != 0 {
		t.Fatalf("page must clamp to the zero page count, got %d", out.CurrentPage)
	}
	if out.Status != model.BookCompleted || out.FinishDate == nil {
		t.Fatalf("reaching the page count must complete the book even at zero pages, got %+v", out)
	}
}

func TestDeleteBook(t *testing.T) {
	e := newEnv()
	rec, _ := e.books.Create(CreateBookRequest{Title: "Gone", Author: "A"})
	if err := e.books.Delete(rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := e.books.Delete(rec.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := e.books.Get(rec.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("get after delete: %v", err)
	}
}
