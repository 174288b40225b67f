package models

// Page is one page of a filtered collection. Index is clamped to
// [0, TotalPages-1]; an empty collection yields TotalPages == 0 and no items,
// which renders as an explicit "no results" state.
type Page[T any] struct {
	Items      []T
	Index      int
	TotalPages int
	Total      int
}

// Paginate slices items into the page at index. The page size is supplied by
// the caller since it depends on the view mode.
func Paginate[T any](items []T, index int, pageSize int) Page[T] {
	total := len(items)
	if pageSize <= 0 || total == 0 {
		return Page[T]{Total: total}
	}

	totalPages := (total + pageSize - 1) / pageSize
	if index < 0 {
		index = 0
	}
	if index > totalPages-1 {
		index = totalPages - 1
	}

	start := index * pageSize
	end := min(start+pageSize, total)

	return Page[T]{
		Items:      items[start:end],
		Index:      index,
		TotalPages: totalPages,
		Total:      total,
	}
}

func (p Page[T]) HasPrev() bool {
	return p.Index > 0
}

func (p Page[T]) HasNext() bool {
	return p.Index < p.TotalPages-1
}

func (p Page[T]) Prev() int {
	return max(p.Index-1, 0)
}

func (p Page[T]) Next() int {
	return min(p.Index+1, p.TotalPages-1)
}
