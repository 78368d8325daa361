package knowledge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Data file names expected under the data directory.
const (
	FileProductCatalog = "product_catalog.json"
	FileFAQ            = "faq.json"
	FileTechDocs       = "tech_documentation.md"
	FileConversations  = "customer_conversations.jsonl"
)

// Base is the loaded knowledge base backing the retrieval indices and the
// billing catalog.
type Base struct {
	Catalog       ProductCatalog
	FAQs          FAQ
	TechDocs      string
	Conversations []Conversation
}

// Load reads the four knowledge files from dataDir.
func Load(dataDir string) (*Base, error) {
	base := &Base{}

	if err := readJSON(filepath.Join(dataDir, FileProductCatalog), &base.Catalog); err != nil {
		return nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	if err := readJSON(filepath.Join(dataDir, FileFAQ), &base.FAQs); err != nil {
		return nil, fmt.Errorf("failed to load FAQs: %w", err)
	}

	techDocs, err := os.ReadFile(filepath.Join(dataDir, FileTechDocs))
	if err != nil {
		return nil, fmt.Errorf("failed to load tech documentation: %w", err)
	}
	base.TechDocs = string(techDocs)

	conversations, err := readConversations(filepath.Join(dataDir, FileConversations))
	if err != nil {
		return nil, fmt.Errorf("failed to load customer conversations: %w", err)
	}
	base.Conversations = conversations

	return base, nil
}

func readJSON(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func readConversations(path string) ([]Conversation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var conversations []Conversation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var conv Conversation
		if err := json.Unmarshal([]byte(line), &conv); err != nil {
			return nil, fmt.Errorf("malformed conversation line: %w", err)
		}
		conversations = append(conversations, conv)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return conversations, nil
}
