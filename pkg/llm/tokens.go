package llm

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// tokenCounter estimates prompt token counts for budget prechecks and
// TPM pacing. cl100k_base is a close enough approximation across all
// cascade providers; when the encoding cannot be loaded it falls back
// to a chars/4 estimate.
type tokenCounter struct {
	mu      sync.Mutex
	encoder *tiktoken.Tiktoken
}

var (
	counter     *tokenCounter
	counterOnce sync.Once
)

func getTokenCounter() *tokenCounter {
	counterOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			counter = &tokenCounter{}
			return
		}
		counter = &tokenCounter{encoder: enc}
	})
	return counter
}

// Count returns the estimated token count of text.
func (tc *tokenCounter) Count(text string) int {
	if tc.encoder == nil {
		return len(text) / 4
	}
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.encoder.Encode(text, nil, nil))
}
