package knowledge

import "strings"

// Chunking defaults tuned for ~250-token passages with continuity across
// chunk boundaries.
const (
	ChunkSize    = 1000
	ChunkOverlap = 200
)

// separators are tried in order, coarsest first, so chunks break at section
// headings before falling back to sentences, words, and finally runes.
var separators = []string{
	"\n## ",
	"\n### ",
	"\n#### ",
	"\n",
	". ",
	"! ",
	"? ",
	";",
	":",
	" ",
	"",
}

// Splitter cuts long text into overlapping chunks at natural boundaries.
type Splitter struct {
	chunkSize int
	overlap   int
}

// NewSplitter creates a splitter with the package defaults.
func NewSplitter() *Splitter {
	return &Splitter{chunkSize: ChunkSize, overlap: ChunkOverlap}
}

// Split returns chunks of at most chunkSize runes. Text shorter than the
// chunk size comes back as a single chunk; empty text yields none.
func (s *Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return s.split(text, 0)
}

func (s *Splitter) split(text string, sepIndex int) []string {
	if len([]rune(text)) <= s.chunkSize {
		return []string{text}
	}

	if sepIndex >= len(separators) {
		return s.hardSplit(text)
	}

	sep := separators[sepIndex]
	if sep == "" {
		return s.hardSplit(text)
	}

	pieces := strings.Split(text, sep)
	if len(pieces) == 1 {
		return s.split(text, sepIndex+1)
	}

	// Re-attach the separator so no text is lost, then merge small pieces
	// back into chunk-sized windows.
	parts := make([]string, 0, len(pieces))
	for i, piece := range pieces {
		if i > 0 {
			piece = sep + piece
		}
		if piece == "" {
			continue
		}
		if len([]rune(piece)) > s.chunkSize {
			parts = append(parts, s.split(piece, sepIndex+1)...)
		} else {
			parts = append(parts, piece)
		}
	}

	return s.merge(parts)
}

// merge greedily packs adjacent parts into chunks, carrying overlap runes
// from the end of each chunk into the next.
func (s *Splitter) merge(parts []string) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		chunk := strings.TrimSpace(current.String())
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, part := range parts {
		if len([]rune(current.String()))+len([]rune(part)) > s.chunkSize && current.Len() > 0 {
			carry := tail(current.String(), s.overlap)
			flush()
			if len([]rune(carry))+len([]rune(part)) <= s.chunkSize {
				current.WriteString(carry)
			}
		}
		current.WriteString(part)
	}
	flush()

	return chunks
}

// hardSplit cuts at rune boundaries when no separator applies.
func (s *Splitter) hardSplit(text string) []string {
	runes := []rune(text)
	step := s.chunkSize - s.overlap
	if step <= 0 {
		step = s.chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

func tail(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
