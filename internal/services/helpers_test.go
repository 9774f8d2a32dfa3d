package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/store"
)

// tickGen is a deterministic id source used across the service tests. Each
// Now call advances one minute so ordering assertions are stable.
type tickGen struct {
	n int
	t time.Time
}

func newTickGen() *tickGen {
	return &tickGen{t: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
}

func (g *tickGen) NewID() string { g.n++; return fmt.Sprintf("t-%d", g.n) }
func (g *tickGen) Now() time.Time {
	g.t = g.t.Add(time.Minute)
	return g.t
}

type env struct {
	gen      *tickGen
	store    *store.Store
	todos    *TodoService
	books    *BookService
	sports   *SportsService
	expenses *ExpenseService
	ideas    *IdeaService
}

func newEnv() *env {
	gen := newTickGen()
	st := store.New(gen)
	log := zerolog.Nop()
	return &env{
		gen:      gen,
		store:    st,
		todos:    NewTodoService(st, log),
		books:    NewBookService(st, gen, log),
		sports:   NewSportsService(st, log),
		expenses: NewExpenseService(st, log),
		ideas:    NewIdeaService(st, log),
	}
}

func strptr(s string) *string { return &s }
