package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "gallery.json could not be parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration unreadable",
		Detail:   "gallery.json or .env exists but could not be read.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "Port must be between 0 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Unknown source kind",
		Detail:   "source.kind must be \"fs\" or \"s3\".",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Missing S3 bucket",
		Detail:   "source.bucket is required when source.kind is \"s3\".",
	},

	// ============================================
	// Discovery Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryDiscovery,
		Message:  "Duplicate page source",
	},
	"E202": {
		Category: CategoryDiscovery,
		Message:  "Page source outside the artifacts convention",
	},
	"E205": {
		Category: CategoryDiscovery,
		Message:  "Page discovery failed",
	},

	// ============================================
	// Page Errors (E203-E204)
	// ============================================

	"E203": {
		Category: CategoryPage,
		Message:  "Unsupported page format",
	},
	"E204": {
		Category: CategoryPage,
		Message:  "Page could not be parsed",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
