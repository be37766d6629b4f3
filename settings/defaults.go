package settings

// Default values mirror what the public site expects to render before an
// admin has saved anything. They are overlaid at read time and never written
// to storage.

func footerDefaults() map[string]interface{} {
	return map[string]interface{}{
		"footer_address":           "123 Steel Industry Blvd, Industrial City",
		"footer_phone":             "+1 (555) 123-4567",
		"footer_fax":               "+1 (555) 123-4568",
		"footer_email":             "info@s-steel.com",
		"footer_website":           "www.s-steel.com",
		"footer_facebook":          "",
		"footer_twitter":           "",
		"footer_instagram":         "",
		"footer_linkedin":          "",
		"footer_certification_iso": true,
		"footer_certification_osha": true,
		"footer_certification_aws":  true,
	}
}

// CompanyInfoDefaults backs the public company-info endpoint (footer and
// contact blocks of the site).
func CompanyInfoDefaults() map[string]interface{} {
	defaults := map[string]interface{}{
		"address": "123 Steel Avenue, Industrial District, City, State 12345",
		"phone":   "+1 (555) 123-4567",
		"email":   "info@s-steel.com",
		"website": "www.s-steel.com",
	}
	for key, value := range footerDefaults() {
		defaults[key] = value
	}
	return defaults
}

// CompanySettingsDefaults backs the admin company-settings endpoint.
func CompanySettingsDefaults() map[string]interface{} {
	defaults := map[string]interface{}{
		"name":               "S-Steel Construction",
		"description":        "Leading steel construction and engineering company specializing in industrial, commercial, and infrastructure projects.",
		"address":            "123 Industrial Ave, Steel City, SC 12345",
		"phone":              "+1 (555) 123-4567",
		"email":              "info@s-steel.com",
		"website":            "www.s-steel.com",
		"founded":            "1995",
		"employees":          "250+",
		"projects_completed": "500+",
		"support_email":      "support@s-steel.com",
		"support_phone":      "+1 (555) 123-4568",
		"sales_email":        "sales@s-steel.com",
		"sales_phone":        "+1 (555) 123-4569",
		"emergency_contact":  "+1 (555) 911-STEEL",
		"business_hours":     "Mon-Fri: 8:00 AM - 6:00 PM",
		"office_locations": []interface{}{
			map[string]interface{}{
				"id":      1,
				"name":    "Main Office",
				"address": "123 Industrial Ave, Steel City, SC 12345",
				"phone":   "+1 (555) 123-4567",
			},
			map[string]interface{}{
				"id":      2,
				"name":    "Regional Office",
				"address": "456 Construction Blvd, Metro City, MC 67890",
				"phone":   "+1 (555) 987-6543",
			},
		},
	}
	for key, value := range footerDefaults() {
		defaults[key] = value
	}
	return defaults
}

// DashboardDefaults backs the admin dashboard-settings endpoint.
func DashboardDefaults() map[string]interface{} {
	return map[string]interface{}{
		"stats_cards": []interface{}{
			map[string]interface{}{
				"id": 1, "title": "Total Projects", "value": "12",
				"change": "+12% this month", "icon": "BuildingOfficeIcon",
				"visible": true, "order": 1,
			},
			map[string]interface{}{
				"id": 2, "title": "New Contacts", "value": "5",
				"change": "+8% this week", "icon": "ChatBubbleLeftRightIcon",
				"visible": true, "order": 2,
			},
			map[string]interface{}{
				"id": 3, "title": "Active Projects", "value": "8",
				"change": "+2 from last month", "icon": "ChartBarIcon",
				"visible": true, "order": 3,
			},
			map[string]interface{}{
				"id": 4, "title": "Revenue", "value": "$2.5M",
				"change": "+15% this quarter", "icon": "BanknotesIcon",
				"visible": true, "order": 4,
			},
		},
		"quick_actions": []interface{}{
			map[string]interface{}{
				"id": 1, "title": "Add New Project",
				"description": "Create a new construction project",
				"link":        "/admin/projects/new", "icon": "PlusIcon", "visible": true,
			},
			map[string]interface{}{
				"id": 2, "title": "View Contacts",
				"description": "Manage customer inquiries",
				"link":        "/admin/contacts", "icon": "ChatBubbleLeftRightIcon", "visible": true,
			},
		},
	}
}
