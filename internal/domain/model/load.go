package model

// LoadState tracks a single data fetch cycle.
type LoadState int

const (
	LoadLoading LoadState = iota
	LoadEmpty
	LoadFailed
	LoadLoaded
)

func (s LoadState) String() string {
	switch s {
	case LoadEmpty:
		return "empty"
	case LoadFailed:
		return "failed"
	case LoadLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// Load is the result of fetching T. Failed keeps the reason for display;
// Empty means the server answered with no data.
type Load[T any] struct {
	State  LoadState
	Data   T
	Reason string
}

func Loaded[T any](data T) Load[T] {
	return Load[T]{State: LoadLoaded, Data: data}
}

func Empty[T any]() Load[T] {
	return Load[T]{State: LoadEmpty}
}

func Failed[T any](reason string) Load[T] {
	return Load[T]{State: LoadFailed, Reason: reason}
}

func (l Load[T]) IsLoading() bool { return l.State == LoadLoading }
func (l Load[T]) IsEmpty() bool   { return l.State == LoadEmpty }
func (l Load[T]) IsFailed() bool  { return l.State == LoadFailed }
func (l Load[T]) IsLoaded() bool  { return l.State == LoadLoaded }
