package knowledge

import (
	"fmt"
	"strings"
)

// ProductDocuments renders products, add-ons, bundles, and FAQs into chunks
// for the products index.
func (b *Base) ProductDocuments(splitter *Splitter) []Document {
	var docs []Document

	for i, product := range b.Catalog.Products {
		text := fmt.Sprintf(`Product: %s
ID: %s
Description: %s

Price:
Monthly: $%.2f
Annual: $%.2f

Features:
%s

Limitations:
%s

Target Audience: %s`,
			product.Name, product.ID, product.Description,
			product.Price.Monthly, product.Price.Annual,
			formatFeatures(product.Features),
			formatList(product.Limitations),
			orDefault(product.TargetAudience, "Not specified"))

		for j, chunk := range splitter.Split(text) {
			docs = append(docs, Document{
				ID:   fmt.Sprintf("product-%s-%d", product.ID, j),
				Text: chunk,
				Metadata: map[string]interface{}{
					"type":         "product",
					"product_id":   product.ID,
					"product_name": product.Name,
					"chunk":        fmt.Sprintf("%d-%d", i, j),
				},
			})
		}
	}

	for i, addon := range b.Catalog.Addons {
		text := fmt.Sprintf(`Add-on: %s
ID: %s
Description: %s

Price: $%.2f

Details: %s`,
			addon.Name, addon.ID, addon.Description, addon.Price,
			orDefault(addon.Details, "No additional details"))

		for j, chunk := range splitter.Split(text) {
			docs = append(docs, Document{
				ID:   fmt.Sprintf("addon-%s-%d", addon.ID, j),
				Text: chunk,
				Metadata: map[string]interface{}{
					"type":       "addon",
					"addon_id":   addon.ID,
					"addon_name": addon.Name,
					"chunk":      fmt.Sprintf("%d-%d", i, j),
				},
			})
		}
	}

	for i, bundle := range b.Catalog.Bundles {
		text := fmt.Sprintf(`Bundle: %s
ID: %s
Description: %s

Included Products: %s

Price:
Monthly: $%.2f
Annual: $%.2f
Savings: %.0f%%`,
			bundle.Name, bundle.ID, bundle.Description,
			strings.Join(bundle.IncludedProducts, ", "),
			bundle.Price.Monthly, bundle.Price.Annual,
			bundle.Price.SavingPercentage)

		for j, chunk := range splitter.Split(text) {
			docs = append(docs, Document{
				ID:   fmt.Sprintf("bundle-%s-%d", bundle.ID, j),
				Text: chunk,
				Metadata: map[string]interface{}{
					"type":        "bundle",
					"bundle_id":   bundle.ID,
					"bundle_name": bundle.Name,
					"chunk":       fmt.Sprintf("%d-%d", i, j),
				},
			})
		}
	}

	for i, category := range b.FAQs.Categories {
		for j, question := range category.Questions {
			text := fmt.Sprintf(`Category: %s
Question: %s
Answer: %s`, category.Name, question.Question, question.Answer)

			for k, chunk := range splitter.Split(text) {
				docs = append(docs, Document{
					ID:   fmt.Sprintf("faq-%d-%d-%d", i, j, k),
					Text: chunk,
					Metadata: map[string]interface{}{
						"type":     "faq",
						"category": category.Name,
						"chunk":    fmt.Sprintf("%d-%d-%d", i, j, k),
					},
				})
			}
		}
	}

	return docs
}

// TechnicalDocuments renders the markdown documentation into chunks for the
// technical index, tagging each chunk with its nearest section heading.
func (b *Base) TechnicalDocuments(splitter *Splitter) []Document {
	var docs []Document

	for i, chunk := range splitter.Split(b.TechDocs) {
		docs = append(docs, Document{
			ID:   fmt.Sprintf("tech-%d", i),
			Text: chunk,
			Metadata: map[string]interface{}{
				"type":    "technical_doc",
				"section": sectionTitle(chunk),
				"chunk":   fmt.Sprintf("%d", i),
			},
		})
	}

	return docs
}

// ConversationDocuments renders historical support conversations into chunks
// for the conversations index.
func (b *Base) ConversationDocuments(splitter *Splitter) []Document {
	var docs []Document

	for i, conv := range b.Conversations {
		var text strings.Builder
		fmt.Fprintf(&text, "Conversation ID: %s\n", conv.ConversationID)
		fmt.Fprintf(&text, "Customer: %s\n", conv.CustomerEmail)
		fmt.Fprintf(&text, "Agent: %s\n\n", conv.AgentName)
		for _, msg := range conv.Messages {
			fmt.Fprintf(&text, "%s: %s\n\n", capitalize(msg.Role), msg.Content)
		}

		for j, chunk := range splitter.Split(text.String()) {
			docs = append(docs, Document{
				ID:   fmt.Sprintf("conv-%s-%d", conv.ConversationID, j),
				Text: chunk,
				Metadata: map[string]interface{}{
					"type":            "conversation",
					"conversation_id": conv.ConversationID,
					"customer_email":  conv.CustomerEmail,
					"agent_name":      conv.AgentName,
					"chunk":           fmt.Sprintf("%d-%d", i, j),
				},
			})
		}
	}

	return docs
}

func formatFeatures(features []Feature) string {
	if len(features) == 0 {
		return "No features specified"
	}
	var b strings.Builder
	for _, f := range features {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "None specified"
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(chunk string) string {
	title := "Technical Documentation"
	for _, line := range strings.Split(chunk, "\n") {
		if strings.HasPrefix(line, "#") {
			title = strings.Trim(line, "# ")
			if strings.HasPrefix(line, "##") {
				break
			}
		}
	}
	return title
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
