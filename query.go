package depot

// queryPtr constrains P to a pointer to Q that implements Query, so a view
// can be allocated from its type alone.
type queryPtr[Q any] interface {
	*Q
	Query
}

// Borrow resolves a single query against w. The caller must Release it.
func Borrow[Q any, P queryPtr[Q]](w *World) (P, error) {
	q := P(new(Q))
	if err := q.Borrow(w); err != nil {
		return nil, err
	}
	return q, nil
}

// scope collects the queries resolved for one system invocation.
type scope struct {
	held []Query
}

func (s *scope) hold(q Query) {
	s.held = append(s.held, q)
}

// runScoped runs fn, then releases every held query in reverse order. When
// fn returns normally and nothing else is borrowed, queued operations are
// flushed.
func (w *World) runScoped(fn func(*scope) error) (err error) {
	var s scope
	completed := false
	defer func() {
		for i := len(s.held) - 1; i >= 0; i-- {
			s.held[i].Release()
		}
		if completed && err == nil && !w.Locked() {
			err = w.processOperationQueue()
		}
	}()
	err = fn(&s)
	completed = true
	return err
}
