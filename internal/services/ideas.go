package services

import (
	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
	"github.com/homemanager/homemanager/internal/validate"
)

// IdeaService owns the freeform notes.
type IdeaService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewIdeaService(s *store.Store, log zerolog.Logger) *IdeaService {
	return &IdeaService{store: s, log: log}
}

type CreateIdeaRequest struct {
	Title       string
	Content     string
	Tags        []string
	Attachments []string
	Pinned      bool
}

func (s *IdeaService) Create(req CreateIdeaRequest) (model.Idea, error) {
	if err := validate.NonEmpty("title", req.Title); err != nil {
		return model.Idea{}, invalid(err)
	}
	rec := s.store.Ideas().Create(model.Idea{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		Attachments: req.Attachments,
		Pinned:      req.Pinned,
	})
	s.log.Debug().Str("idea", rec.ID).Msg("idea created")
	return rec, nil
}

type UpdateIdeaRequest struct {
	Title       *string
	Content     *string
	Tags        *[]string
	Attachments *[]string
}

func (s *IdeaService) Update(id string, req UpdateIdeaRequest) (model.Idea, error) {
	if req.Title != nil {
		if err := validate.NonEmpty("title", *req.Title); err != nil {
			return model.Idea{}, invalid(err)
		}
	}
	rec, ok := s.store.Ideas().Update(id, func(i model.Idea) model.Idea {
		if req.Title != nil {
			i.Title = *req.Title
		}
		if req.Content != nil {
			i.Content = *req.Content
		}
		if req.Tags != nil {
			i.Tags = *req.Tags
		}
		if req.Attachments != nil {
			i.Attachments = *req.Attachments
		}
		return i
	})
	if !ok {
		return model.Idea{}, notFound("idea", id)
	}
	return rec, nil
}

// ToggleArchive flips the archived flag.
func (s *IdeaService) ToggleArchive(id string) (model.Idea, error) {
	rec, ok := s.store.Ideas().Update(id, func(i model.Idea) model.Idea {
		i.Archived = !i.Archived
		return i
	})
	if !ok {
		return model.Idea{}, notFound("idea", id)
	}
	return rec, nil
}

// TogglePin flips the pinned flag.
func (s *IdeaService) TogglePin(id string) (model.Idea, error) {
	rec, ok := s.store.Ideas().Update(id, func(i model.Idea) model.Idea {
		i.Pinned = !i.Pinned
		return i
	})
	if !ok {
		return model.Idea{}, notFound("idea", id)
	}
	return rec, nil
}

func (s *IdeaService) Delete(id string) error {
	if !s.store.Ideas().Delete(id) {
		return notFound("idea", id)
	}
	return nil
}

func (s *IdeaService) All() []model.Idea { return s.store.Ideas().Snapshot() }
