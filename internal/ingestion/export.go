package ingestion

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
)

// Export writes every stored element to w as newline-delimited JSON, the
// format Import reads back. It returns the number of records written.
func Export(store database.Store, w io.Writer) (int, error) {
	elements, err := store.QueryElements(database.ElementFilter{})
	if err != nil {
		return 0, fmt.Errorf("loading elements: %w", err)
	}

	enc := json.NewEncoder(w)
	for i, el := range elements {
		if err := enc.Encode(el); err != nil {
			return i, fmt.Errorf("encoding element %d: %w", el.AtomicNumber, err)
		}
	}
	return len(elements), nil
}
