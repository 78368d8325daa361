package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		FileProductCatalog: `{
			"products": [
				{
					"id": "cm-pro",
					"name": "CloudManager Pro",
					"description": "Cloud management for growing teams",
					"price": {"monthly": 149.99, "annual": 1499.99},
					"features": [{"name": "Multi-cloud", "description": "Manage AWS, Azure, and GCP"}],
					"limitations": ["Up to 20 users"],
					"target_audience": "Mid-size companies"
				}
			],
			"addons": [
				{"id": "addon-premium-support", "name": "Premium Support", "description": "24/7 support", "price": 299.99, "details": "1-hour response SLA"}
			],
			"bundles": [
				{"id": "bundle-starter", "name": "Starter Bundle", "description": "Pro plus support", "included_products": ["cm-pro", "addon-premium-support"], "price": {"monthly": 399.99, "annual": 3999.99, "saving_percentage": 12}}
			]
		}`,
		FileFAQ: `{
			"categories": [
				{
					"name": "Billing",
					"questions": [
						{"question": "How do I change my plan?", "answer": "Go to Billing > Plan in the portal."}
					]
				}
			]
		}`,
		FileTechDocs: "# TechSolutions Documentation\n\n## Error E1234\n\nVerify API credentials in Settings > Connections.\n",
		FileConversations: `{"conversation_id": "CONV-1", "customer_email": "a@example.com", "agent_name": "Dana", "messages": [{"role": "customer", "content": "My sync fails."}, {"role": "agent", "content": "Try restarting the agent."}]}

{"conversation_id": "CONV-2", "customer_email": "b@example.com", "agent_name": "Lee", "messages": [{"role": "customer", "content": "Pricing question."}]}`,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	base, err := Load(writeTestData(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(base.Catalog.Products) != 1 || base.Catalog.Products[0].ID != "cm-pro" {
		t.Errorf("unexpected products: %+v", base.Catalog.Products)
	}
	if len(base.Catalog.Addons) != 1 || len(base.Catalog.Bundles) != 1 {
		t.Errorf("addons/bundles not loaded: %d/%d", len(base.Catalog.Addons), len(base.Catalog.Bundles))
	}
	if len(base.FAQs.Categories) != 1 {
		t.Errorf("unexpected FAQ categories: %+v", base.FAQs.Categories)
	}
	if !strings.Contains(base.TechDocs, "Error E1234") {
		t.Errorf("tech docs not loaded: %q", base.TechDocs)
	}
	// Blank lines in the JSONL are skipped.
	if len(base.Conversations) != 2 {
		t.Errorf("got %d conversations, want 2", len(base.Conversations))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load succeeded on an empty directory")
	}
}

func TestDocuments(t *testing.T) {
	base, err := Load(writeTestData(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	splitter := NewSplitter()

	t.Run("product documents cover catalog and faqs", func(t *testing.T) {
		docs := base.ProductDocuments(splitter)

		types := map[string]int{}
		for _, doc := range docs {
			typ, _ := doc.Metadata["type"].(string)
			types[typ]++
			if doc.ID == "" || doc.Text == "" {
				t.Errorf("document missing id or text: %+v", doc)
			}
		}
		for _, want := range []string{"product", "addon", "bundle", "faq"} {
			if types[want] == 0 {
				t.Errorf("no documents of type %q, got %v", want, types)
			}
		}
	})

	t.Run("technical documents carry section titles", func(t *testing.T) {
		docs := base.TechnicalDocuments(splitter)
		if len(docs) == 0 {
			t.Fatal("no technical documents")
		}
		if docs[0].Metadata["type"] != "technical_doc" {
			t.Errorf("type = %v", docs[0].Metadata["type"])
		}
		if section, _ := docs[0].Metadata["section"].(string); section == "" {
			t.Error("section title is empty")
		}
	})

	t.Run("conversation documents keep speaker roles", func(t *testing.T) {
		docs := base.ConversationDocuments(splitter)
		if len(docs) != 2 {
			t.Fatalf("got %d conversation documents, want 2", len(docs))
		}
		if !strings.Contains(docs[0].Text, "Customer: My sync fails.") {
			t.Errorf("conversation text missing customer line: %q", docs[0].Text)
		}
		if docs[0].Metadata["conversation_id"] != "CONV-1" {
			t.Errorf("conversation_id = %v", docs[0].Metadata["conversation_id"])
		}
	})
}

func TestPricingJSON(t *testing.T) {
	base, err := Load(writeTestData(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	pricing := base.PricingJSON()
	if !strings.Contains(pricing, `"id": "cm-pro"`) {
		t.Errorf("pricing JSON missing product: %q", pricing)
	}
	if !strings.Contains(pricing, "149.99") {
		t.Errorf("pricing JSON missing monthly price: %q", pricing)
	}

	empty := &Base{}
	if got := empty.PricingJSON(); got != "" {
		t.Errorf("empty catalog pricing = %q, want empty", got)
	}
}
