package variant

// Cloner is implemented by alternatives whose copies are made by a function
// that may fail. Without it a copy is a plain Go assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by alternatives with a dedicated, possibly failing,
// move. Without it a move is a copy.
type Mover[T any] interface {
	Move() (T, error)
}

// Assigner is implemented by *T for alternatives with a custom copy
// assignment.
type Assigner[T any] interface {
	Assign(src T) error
}

// MoveAssigner is implemented by *T for alternatives with a custom move
// assignment.
type MoveAssigner[T any] interface {
	MoveAssign(src T) error
}

// Destroyer is implemented by alternatives that must release something when
// their lifetime ends. Destroy is called exactly once per live value.
type Destroyer interface {
	Destroy()
}

// nested is implemented by *Variant. Assigning into a variant alternative
// runs the inner variant's Assign or MoveAssign.
type nested interface {
	assignFrom(src any) error
	moveAssignFrom(src any) error
}

// cell is the type-erased holder of one live alternative.
type cell interface {
	copyConstruct() (cell, error)
	moveConstruct() (cell, error)
	// copyAssign and moveAssign write into dst, which holds the same
	// alternative type.
	copyAssign(dst cell) error
	moveAssign(dst cell) error
	ptr() any
	get() any
	destroy()
}

type slot[T any] struct {
	v T
}

func (s *slot[T]) copyConstruct() (cell, error) {
	if c, ok := any(&s.v).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return nil, err
		}
		return &slot[T]{v: v}, nil
	}
	return &slot[T]{v: s.v}, nil
}

func (s *slot[T]) moveConstruct() (cell, error) {
	if m, ok := any(&s.v).(Mover[T]); ok {
		v, err := m.Move()
		if err != nil {
			return nil, err
		}
		return &slot[T]{v: v}, nil
	}
	return s.copyConstruct()
}

func (s *slot[T]) copyAssign(dst cell) error {
	d := dst.(*slot[T])
	if n, ok := any(&d.v).(nested); ok {
		return n.assignFrom(&s.v)
	}
	if a, ok := any(&d.v).(Assigner[T]); ok {
		return a.Assign(s.v)
	}
	if c, ok := any(&s.v).(Cloner[T]); ok {
		v, err := c.Clone()
		if err != nil {
			return err
		}
		d.v = v
		return nil
	}
	d.v = s.v
	return nil
}

func (s *slot[T]) moveAssign(dst cell) error {
	d := dst.(*slot[T])
	if n, ok := any(&d.v).(nested); ok {
		return n.moveAssignFrom(&s.v)
	}
	if a, ok := any(&d.v).(MoveAssigner[T]); ok {
		return a.MoveAssign(s.v)
	}
	if m, ok := any(&s.v).(Mover[T]); ok {
		v, err := m.Move()
		if err != nil {
			return err
		}
		d.v = v
		return nil
	}
	return s.copyAssign(dst)
}

func (s *slot[T]) ptr() any { return &s.v }

func (s *slot[T]) get() any { return s.v }

func (s *slot[T]) destroy() {
	if d, ok := any(&s.v).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	s.v = zero
}
