package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/ident"
	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
	"github.com/homemanager/homemanager/internal/validate"
)

// BookService owns the reading list.
type BookService struct {
	store *store.Store
	gen   ident.Generator
	log   zerolog.Logger
}

func NewBookService(s *store.Store, gen ident.Generator, log zerolog.Logger) *BookService {
	return &BookService{store: s, gen: gen, log: log}
}

type CreateBookRequest struct {
	ISBN       *string
	Title      string
	Author     string
	TotalPages int
	Status     model.BookStatus
	Rating     *int
	Notes      *string
	StartDate  *time.Time
}

func (s *BookService) Create(req CreateBookRequest) (model.Book, error) {
	if err := validate.NonEmpty("title", req.Title); err != nil {
		return model.Book{}, invalid(err)
	}
	if err := validate.NonEmpty("author", req.Author); err != nil {
		return model.Book{}, invalid(err)
	}
	if err := validate.NonNegativeInt("totalPages", req.TotalPages); err != nil {
		return model.Book{}, invalid(err)
	}
	if err := validate.Rating(req.Rating); err != nil {
		return model.Book{}, invalid(err)
	}
	if req.Status == "" {
		req.Status = model.BookToRead
	}
	if err := validate.Enum("status", req.Status.Valid()); err != nil {
		return model.Book{}, invalid(err)
	}
	rec := s.store.Books().Create(model.Book{
		ISBN:       req.ISBN,
		Title:      req.Title,
		Author:     req.Author,
		TotalPages: req.TotalPages,
		Status:     req.Status,
		Rating:     req.Rating,
		Notes:      req.Notes,
		StartDate:  req.StartDate,
	})
	s.log.Debug().Str("book", rec.ID).Msg("book created")
	return rec, nil
}

type UpdateBookRequest struct {
	ISBN        *string
	Title       *string
	Author      *string
	TotalPages  *int
	CurrentPage *int
	Status      *model.BookStatus
	Rating      *int
	Notes       *string
	StartDate   *time.Time
	FinishDate  *time.Time
}

func (s *BookService) Update(id string, req UpdateBookRequest) (model.Book, error) {
	if req.Title != nil {
		if err := validate.NonEmpty("title", *req.Title); err != nil {
			return model.Book{}, invalid(err)
		}
	}
	if req.TotalPages != nil {
		if err := validate.NonNegativeInt("totalPages", *req.TotalPages); err != nil {
			return model.Book{}, invalid(err)
		}
	}
	if req.CurrentPage != nil {
		if err := validate.NonNegativeInt("currentPage", *req.CurrentPage); err != nil {
			return model.Book{}, invalid(err)
		}
	}
	if err := validate.Rating(req.Rating); err != nil {
		return model.Book{}, invalid(err)
	}
	if req.Status != nil {
		if err := validate.Enum("status", req.Status.Valid()); err != nil {
			return model.Book{}, invalid(err)
		}
	}
	rec, ok := s.store.Books().Update(id, func(b model.Book) model.Book {
		if req.ISBN != nil {
			b.ISBN = req.ISBN
		}
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Author != nil {
			b.Author = *req.Author
		}
		if req.TotalPages != nil {
			b.TotalPages = *req.TotalPages
		}
		if req.CurrentPage != nil {
			b.CurrentPage = *req.CurrentPage
		}
		if req.Status != nil {
			b.Status = *req.Status
		}
		if req.Rating != nil {
			b.Rating = req.Rating
		}
		if req.Notes != nil {
			b.Notes = req.Notes
		}
		if req.StartDate != nil {
			b.StartDate = req.StartDate
		}
		if req.FinishDate != nil {
			b.FinishDate = req.FinishDate
		}
		return b
	})
	if !ok {
		return model.Book{}, notFound("book", id)
	}
	return rec, nil
}

// UpdateProgress moves the bookmark. Reaching or passing the last page marks
// the book completed and stamps the finish date; any lower page puts it back
// to reading, finish date left as-is. A book with no recorded page count
// completes on its first progress update.
func (s *BookService) UpdateProgress(id string, currentPage int) (model.Book, error) {
	if err := validate.NonNegativeInt("currentPage", currentPage); err != nil {
		return model.Book{}, invalid(err)
	}
	rec, ok := s.store.Books().Update(id, func(b model.Book) model.Book {
		page := currentPage
		if page > b.TotalPages {
			page = b.TotalPages
		}
		b.CurrentPage = page
		if page >= b.TotalPages {
			b.Status = model.BookCompleted
			now := s.gen.Now()
			b.FinishDate = &now
		} else {
			b.Status = model.BookReading
		}
		return b
	})
	if !ok {
		return model.Book{}, notFound("book", id)
	}
	return rec, nil
}

func (s *BookService) Delete(id string) error {
	if !s.store.Books().Delete(id) {
		return notFound("book", id)
	}
	return nil
}

func (s *BookService) All() []model.Book { return s.store.Books().Snapshot() }

func (s *BookService) Get(id string) (model.Book, error) {
	rec, ok := s.store.Books().Get(id)
	if !ok {
		return model.Book{}, notFound("book", id)
	}
	return rec, nil
}
