package services

import (
	"errors"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
	"github.com/homemanager/homemanager/internal/validate"
)

var (
	errSelfParent = errors.New("todo cannot be its own parent")
	errCycle      = errors.New("parent assignment would form a cycle")
)

// TodoService owns task operations, including the parent/child forest that
// lives as flat records with weak parent references.
type TodoService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewTodoService(s *store.Store, log zerolog.Logger) *TodoService {
	return &TodoService{store: s, log: log}
}

// CreateTodoRequest carries the caller-supplied fields; identity and
// timestamps are assigned by the store.
type CreateTodoRequest struct {
	Title       string
	Description *string
	Priority    model.Priority
	DueDate     *time.Time
	Recurrence  model.Recurrence
	ParentID    *string
	Tags        []string
}

func (s *TodoService) Create(req CreateTodoRequest) (model.Todo, error) {
	if err := validate.NonEmpty("title", req.Title); err != nil {
		return model.Todo{}, invalid(err)
	}
	if !req.Priority.Valid() {
		req.Priority = model.PriorityMedium
	}
	if err := validate.Enum("recurrence", req.Recurrence.Valid()); err != nil {
		return model.Todo{}, invalid(err)
	}
	if req.ParentID != nil {
		if _, ok := s.store.Todos().Get(*req.ParentID); !ok {
			return model.Todo{}, notFound("parent todo", *req.ParentID)
		}
	}
	rec := s.store.Todos().Create(model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Recurrence:  req.Recurrence,
		ParentID:    req.ParentID,
		Tags:        req.Tags,
	})
	s.log.Debug().Str("todo", rec.ID).Msg("todo created")
	return rec, nil
}

// UpdateTodoRequest patches a todo. Nil fields are left untouched.
type UpdateTodoRequest struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *model.Priority
	DueDate     *time.Time
	Recurrence  *model.Recurrence
	ParentID    *string
	Tags        *[]string
}

func (s *TodoService) Update(id string, req UpdateTodoRequest) (model.Todo, error) {
	if req.Title != nil {
		if err := validate.NonEmpty("title", *req.Title); err != nil {
			return model.Todo{}, invalid(err)
		}
	}
	if req.Priority != nil {
		if err := validate.Enum("priority", req.Priority.Valid()); err != nil {
			return model.Todo{}, invalid(err)
		}
	}
	if req.ParentID != nil {
		if err := s.checkParent(id, *req.ParentID); err != nil {
			return model.Todo{}, err
		}
	}
	rec, ok := s.store.Todos().Update(id, func(t model.Todo) model.Todo {
		if req.Title != nil {
			t.Title = *req.Title
		}
		if req.Description != nil {
			t.Description = req.Description
		}
		if req.Completed != nil {
			t.Completed = *req.Completed
		}
		if req.Priority != nil {
			t.Priority = *req.Priority
		}
		if req.DueDate != nil {
			t.DueDate = req.DueDate
		}
		if req.Recurrence != nil {
			t.Recurrence = *req.Recurrence
		}
		if req.ParentID != nil {
			t.ParentID = req.ParentID
		}
		if req.Tags != nil {
			t.Tags = *req.Tags
		}
		return t
	})
	if !ok {
		return model.Todo{}, notFound("todo", id)
	}
	return rec, nil
}

// checkParent enforces the forest invariant: the parent must exist and the
// new edge must not close a cycle through id.
func (s *TodoService) checkParent(id, parentID string) error {
	if parentID == id {
		return invalid(errSelfParent)
	}
	cur := parentID
	for cur != "" {
		p, ok := s.store.Todos().Get(cur)
		if !ok {
			return notFound("parent todo", parentID)
		}
		if p.ID == id {
			return invalid(errCycle)
		}
		if p.ParentID == nil {
			break
		}
		cur = *p.ParentID
	}
	return nil
}

// ToggleComplete flips the completion flag.
func (s *TodoService) ToggleComplete(id string) (model.Todo, error) {
	rec, ok := s.store.Todos().Update(id, func(t model.Todo) model.Todo {
		t.Completed = !t.Completed
		return t
	})
	if !ok {
		return model.Todo{}, notFound("todo", id)
	}
	return rec, nil
}

// Delete removes a single todo. Its children, if any, keep their dangling
// parent reference; use DeleteWithChildren to cascade.
func (s *TodoService) Delete(id string) error {
	if !s.store.Todos().Delete(id) {
		return notFound("todo", id)
	}
	return nil
}

// DeleteWithChildren removes the todo and its direct children in one pass.
// Grandchildren intentionally keep their dangling parent reference; the
// cascade never goes deeper than one level. Returns how many records were
// removed.
func (s *TodoService) DeleteWithChildren(id string) int {
	n := s.store.Todos().DeleteWhere(func(t model.Todo) bool {
		return t.ID == id || (t.ParentID != nil && *t.ParentID == id)
	})
	if n > 0 {
		s.log.Debug().Str("todo", id).Int("removed", n).Msg("todo deleted with children")
	}
	return n
}

// DeleteSubtree removes the todo and every transitive descendant. This is the
// full-recursion variant of DeleteWithChildren; callers opt into it
// explicitly.
func (s *TodoService) DeleteSubtree(id string) int {
	doomed := map[string]bool{id: true}
	// Repeated passes until the frontier stops growing; depth is tiny in
	// practice.
	for {
		grew := false
		for _, t := range s.store.Todos().Snapshot() {
			if t.ParentID != nil && doomed[*t.ParentID] && !doomed[t.ID] {
				doomed[t.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return s.store.Todos().DeleteWhere(func(t model.Todo) bool { return doomed[t.ID] })
}

// ChildrenOf returns the direct children of id in insertion order.
func (s *TodoService) ChildrenOf(id string) iter.Seq[model.Todo] {
	return s.store.Todos().Query(func(t model.Todo) bool {
		return t.ParentID != nil && *t.ParentID == id
	})
}

// TopLevel returns the todos without a parent, in insertion order.
func (s *TodoService) TopLevel() iter.Seq[model.Todo] {
	return s.store.Todos().Query(func(t model.Todo) bool { return t.ParentID == nil })
}

// All returns the current snapshot of every todo.
func (s *TodoService) All() []model.Todo { return s.store.Todos().Snapshot() }

// Get returns one todo by id.
func (s *TodoService) Get(id string) (model.Todo, error) {
	rec, ok := s.store.Todos().Get(id)
	if !ok {
		return model.Todo{}, notFound("todo", id)
	}
	return rec, nil
}
