package apiclient

import "strings"

// resourceTables maps the logical admin resource names used in typed API
// paths to the physical table names the generic CRUD endpoint expects.
var resourceTables = map[string]string{
	"contact-submissions": "contact_submissions",
	"hero-images":         "hero_images",
	"product-images":      "product_images",
	"testimonials":        "testimonials",
	"orders":              "orders",
	"bot-responses":       "bot_responses",
	"chat-sessions":       "chat_messages",
	"chat":                "chat_messages",
	"visitor-tracking":    "visitor_tracking",
	"support-chat":        "chat_messages",
	"admin-users":         "admin_users",
	"newsletter":          "newsletter_requests",
	"footer-settings":     "footer_settings",
}

// ResourceRef is a parsed logical admin path: the resource name and an
// optional trailing id segment.
type ResourceRef struct {
	Resource string
	ID       string
	Table    string
	Mapped   bool
}

// ParseResource splits a logical admin path such as "/api/admin/orders/5"
// into its resource name and id, and resolves the resource to a table name.
// Paths outside /api/admin/ and unknown resources come back with
// Mapped=false; callers fall back to the bare CRUD endpoint for those.
func ParseResource(path string) ResourceRef {
	trimmed := strings.TrimPrefix(path, "/api/admin/")
	if trimmed == path {
		return ResourceRef{Resource: strings.Trim(path, "/")}
	}
	trimmed = strings.Trim(trimmed, "/")

	ref := ResourceRef{Resource: trimmed}
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		ref.Resource = trimmed[:i]
		ref.ID = trimmed[i+1:]
	}

	if table, ok := resourceTables[ref.Resource]; ok {
		ref.Table = table
		ref.Mapped = true
	}
	return ref
}

// TableFor returns the physical table name for a logical resource.
func TableFor(resource string) (string, bool) {
	table, ok := resourceTables[resource]
	return table, ok
}
