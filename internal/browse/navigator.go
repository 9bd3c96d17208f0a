package browse

import "github.com/five82/lrrview/internal/results"

// DefaultPageSize is the number of sequences shown per page.
const DefaultPageSize = 10

// SelectFunc receives the full record whenever the user selects a sequence.
type SelectFunc func(results.Sequence)

// PageState is the navigator's visible window after a page change.
type PageState struct {
	Index   int
	Size    int
	Last    int
	Total   int
	Start   int // absolute index of Records[0]
	Records []results.Sequence
}

// Navigator owns the dataset, the current page window and the active sequence.
// It never fails: out-of-range requests produce empty or partial pages.
type Navigator struct {
	records   []results.Sequence
	pageIndex int
	pageSize  int
	start     int
	page      []results.Sequence

	active    results.Sequence
	hasActive bool

	onSelect  SelectFunc
	listeners []func(PageState)
}

// NewNavigator builds a navigator over records and shows the first page.
// onSelect may be nil.
func NewNavigator(records []results.Sequence, pageSize int, onSelect SelectFunc) *Navigator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	n := &Navigator{
		records:  records,
		pageSize: pageSize,
		onSelect: onSelect,
	}
	n.ChangePage(0, pageSize)
	return n
}

// Subscribe registers fn to receive the replacement page after every change.
func (n *Navigator) Subscribe(fn func(PageState)) {
	if fn == nil {
		return
	}
	n.listeners = append(n.listeners, fn)
}

// ChangePage sets the page index and size and recomputes the visible slice
// as records[page*size : min(page*size+size, total)]. The index is not
// validated; a non-positive size keeps the current size.
func (n *Navigator) ChangePage(page, size int) {
	if size <= 0 {
		size = n.pageSize
	}
	n.pageIndex = page
	n.pageSize = size

	start, end := pageBounds(page, size, len(n.records))
	n.start = start
	n.page = n.records[start:end:end]
	n.notify()
}

// PrevPage moves back one page unless already on the first page.
func (n *Navigator) PrevPage() {
	if n.pageIndex > 0 {
		n.ChangePage(n.pageIndex-1, n.pageSize)
	}
}

// NextPage moves forward one page unless already on the last page.
func (n *Navigator) NextPage() {
	if n.pageIndex < n.LastPage() {
		n.ChangePage(n.pageIndex+1, n.pageSize)
	}
}

// GoTo jumps to a 1-based page number. Numbers outside [1, LastPage()+1]
// are ignored. It reports whether the page changed.
func (n *Navigator) GoTo(pageNumber int) bool {
	index := pageNumber - 1
	if index < 0 || index > n.LastPage() {
		return false
	}
	n.ChangePage(index, n.pageSize)
	return true
}

// OnChangePageSize re-applies the current page index with a new size. The
// index is kept, so the visible records may shift or the page may be empty.
func (n *Navigator) OnChangePageSize(size int) {
	if size <= 0 {
		return
	}
	n.ChangePage(n.pageIndex, size)
}

// Select marks seq as active and forwards it to the selection callback.
func (n *Navigator) Select(seq results.Sequence) {
	n.active = seq
	n.hasActive = true
	if n.onSelect != nil {
		n.onSelect(seq)
	}
}

// SelectRow selects the row-th record of the visible page. Rows outside the
// page are ignored.
func (n *Navigator) SelectRow(row int) bool {
	if row < 0 || row >= len(n.page) {
		return false
	}
	n.Select(n.page[row])
	return true
}

// LastPage returns ceil(total/pageSize) - 1, which is -1 for an empty dataset.
func (n *Navigator) LastPage() int {
	total := len(n.records)
	return (total+n.pageSize-1)/n.pageSize - 1
}

// Page returns the visible records. The slice must not be modified.
func (n *Navigator) Page() []results.Sequence { return n.page }

// PageStart returns the absolute dataset index of the first visible record.
func (n *Navigator) PageStart() int { return n.start }

// PageIndex returns the 0-based page index.
func (n *Navigator) PageIndex() int { return n.pageIndex }

// PageSize returns the current page size.
func (n *Navigator) PageSize() int { return n.pageSize }

// Total returns the dataset size.
func (n *Navigator) Total() int { return len(n.records) }

// Active returns the active sequence and whether one has been selected.
func (n *Navigator) Active() (results.Sequence, bool) { return n.active, n.hasActive }

// State returns the current page window.
func (n *Navigator) State() PageState {
	return PageState{
		Index:   n.pageIndex,
		Size:    n.pageSize,
		Last:    n.LastPage(),
		Total:   len(n.records),
		Start:   n.start,
		Records: n.page,
	}
}

func (n *Navigator) notify() {
	if len(n.listeners) == 0 {
		return
	}
	st := n.State()
	for _, fn := range n.listeners {
		fn(st)
	}
}

// pageBounds returns the clamped [start, end) range of a page. Negative and
// past-the-end pages are empty.
func pageBounds(page, size, total int) (int, int) {
	if page < 0 || size <= 0 || page > total/size {
		return 0, 0
	}
	start := page * size
	end := start + size
	if end > total {
		end = total
	}
	if start > end {
		return 0, 0
	}
	return start, end
}
