package depot

var (
	_ Query = &Uniq[struct{}]{}
	_ Query = &UniqMut[struct{}]{}
)

// Uniq is a shared view of the unique of type T. Uniques are never created
// lazily; borrowing one that was not inserted fails with StorageMissingError.
type Uniq[T any] struct {
	g guard[UniqueStorage[T]]
}

// UniqMut is an exclusive view of the unique of type T.
type UniqMut[T any] struct {
	g guard[UniqueStorage[T]]
}

func (q *Uniq[T]) Borrow(w *World) error {
	g, err := borrowRef[UniqueStorage[T]](&w.uniques)
	if err != nil {
		return err
	}
	q.g = g
	return nil
}

func (q *Uniq[T]) Release() {
	q.g.release()
}

func (q *Uniq[T]) Get() T {
	return uniqueStorage(q.g).value
}

func (q *UniqMut[T]) Borrow(w *World) error {
	g, err := borrowMut[UniqueStorage[T]](&w.uniques)
	if err != nil {
		return err
	}
	q.g = g
	return nil
}

func (q *UniqMut[T]) Release() {
	q.g.release()
}

func (q *UniqMut[T]) Get() T {
	return uniqueStorage(q.g).value
}

func (q *UniqMut[T]) GetMut() *T {
	return &uniqueStorage(q.g).value
}

func (q *UniqMut[T]) Set(value T) {
	uniqueStorage(q.g).value = value
}

func uniqueStorage[T any](g guard[UniqueStorage[T]]) *UniqueStorage[T] {
	if !g.held() {
		panic("depot: use of a released unique query")
	}
	return g.value
}
