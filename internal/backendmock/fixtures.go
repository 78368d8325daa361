package backendmock

import "github.com/gin-gonic/gin"

var orders = map[string]gin.H{
	"ORD-12345": {
		"order_id": "ORD-12345",
		"status":   "shipped",
		"items": []gin.H{
			{"product_id": "cm-pro", "quantity": 1, "price": 149.99},
		},
		"total":         149.99,
		"order_date":    "2023-09-10",
		"shipping_date": "2023-09-12",
		"delivery_date": "2023-09-15",
	},
	"ORD-56789": {
		"order_id": "ORD-56789",
		"status":   "processing",
		"items": []gin.H{
			{"product_id": "cm-enterprise", "quantity": 1, "price": 499.99},
			{"product_id": "addon-premium-support", "quantity": 1, "price": 299.99},
		},
		"total":         799.98,
		"order_date":    "2023-09-22",
		"shipping_date": nil,
		"delivery_date": nil,
	},
}

var accounts = map[string]gin.H{
	"ACC-1111": {
		"account_id": "ACC-1111",
		"name":       "Acme Corp",
		"subscription": gin.H{
			"plan":           "cm-pro",
			"status":         "active",
			"start_date":     "2023-01-15",
			"renewal_date":   "2024-01-15",
			"payment_method": "credit_card",
			"auto_renew":     true,
		},
		"users": []gin.H{
			{"email": "admin@acme.example.com", "role": "admin"},
			{"email": "user1@acme.example.com", "role": "viewer"},
			{"email": "user2@acme.example.com", "role": "operator"},
		},
	},
	"ACC-2222": {
		"account_id": "ACC-2222",
		"name":       "Globex Inc",
		"subscription": gin.H{
			"plan":           "cm-enterprise",
			"status":         "active",
			"start_date":     "2023-03-10",
			"renewal_date":   "2024-03-10",
			"payment_method": "invoice",
			"auto_renew":     false,
		},
		"users": []gin.H{
			{"email": "admin@globex.example.com", "role": "admin"},
			{"email": "finance@globex.example.com", "role": "billing"},
			{"email": "security@globex.example.com", "role": "security_admin"},
			{"email": "devops@globex.example.com", "role": "operator"},
		},
	},
}

var diagnoses = map[string]gin.H{
	"error e1234": {
		"issue_id": "E1234",
		"name":     "API Connection Failure",
		"solutions": []string{
			"Verify API credentials in Settings > Connections",
			"Check if your firewall allows outbound connections to cloud provider APIs",
			"Ensure cloud provider services are operational",
		},
		"documentation_link": "docs.techsolutions.example.com/errors/e1234",
	},
	"error e5678": {
		"issue_id": "E5678",
		"name":     "Container Image Verification Failed",
		"solutions": []string{
			"Check image integrity and re-pull from registry",
			"Verify signature configuration in Security > Image Signing",
			"Review scan results in Security > Vulnerability Reports",
		},
		"documentation_link": "docs.techsolutions.example.com/errors/e5678",
	},
}

var diagnosisUnknown = gin.H{
	"issue_id": "unknown",
	"name":     "Unrecognized Issue",
	"solutions": []string{
		"Check application logs for specific error messages",
		"Verify your configuration settings",
		"Contact support with error details for assistance",
	},
	"documentation_link": "docs.techsolutions.example.com/troubleshooting",
}
