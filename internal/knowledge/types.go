package knowledge

// ProductCatalog is the parsed product_catalog.json.
type ProductCatalog struct {
	Products []Product `json:"products"`
	Addons   []Addon   `json:"addons"`
	Bundles  []Bundle  `json:"bundles"`
}

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          Price     `json:"price"`
	Features       []Feature `json:"features"`
	Limitations    []string  `json:"limitations"`
	TargetAudience string    `json:"target_audience"`
}

type Price struct {
	Monthly          float64 `json:"monthly"`
	Annual           float64 `json:"annual"`
	SavingPercentage float64 `json:"saving_percentage,omitempty"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Addon struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Details     string  `json:"details"`
}

type Bundle struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	IncludedProducts []string `json:"included_products"`
	Price            Price    `json:"price"`
}

// FAQ is the parsed faq.json.
type FAQ struct {
	Categories []FAQCategory `json:"categories"`
}

type FAQCategory struct {
	Name      string    `json:"name"`
	Questions []FAQItem `json:"questions"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Conversation is one line of customer_conversations.jsonl.
type Conversation struct {
	ConversationID string    `json:"conversation_id"`
	CustomerEmail  string    `json:"customer_email"`
	AgentName      string    `json:"agent_name"`
	Messages       []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Document is one chunk ready for embedding and upsert.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]interface{}
}
