package depot

var (
	_ Query = &DataRef[struct{}]{}
	_ Query = &DataMut[struct{}]{}
)

// DataRef is a shared view of the record attached with WithData. Borrowing
// fails with StorageMissingError when the world carries no record of type D.
type DataRef[D any] struct {
	g guard[D]
}

// DataMut is an exclusive view of the record attached with WithData.
type DataMut[D any] struct {
	g guard[D]
}

func (q *DataRef[D]) Borrow(w *World) error {
	g, err := borrowRef[D](&w.data)
	if err != nil {
		return err
	}
	q.g = g
	return nil
}

func (q *DataRef[D]) Release() {
	q.g.release()
}

func (q *DataRef[D]) Get() D {
	return *dataValue(q.g)
}

func (q *DataMut[D]) Borrow(w *World) error {
	g, err := borrowMut[D](&w.data)
	if err != nil {
		return err
	}
	q.g = g
	return nil
}

func (q *DataMut[D]) Release() {
	q.g.release()
}

func (q *DataMut[D]) Get() D {
	return *dataValue(q.g)
}

func (q *DataMut[D]) GetMut() *D {
	return dataValue(q.g)
}

func dataValue[D any](g guard[D]) *D {
	if !g.held() {
		panic("depot: use of a released data query")
	}
	return g.value
}
