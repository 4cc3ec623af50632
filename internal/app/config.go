package app

import "time"

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// Source selects the popover's item-source policy.
	Source  string `validate:"oneof=local catalog"`
	Catalog CatalogConfig
}

// CatalogConfig points the remote item source at the product catalog. The
// token is only ever supplied through the environment (or a .env file),
// never through flags or source code.
type CatalogConfig struct {
	BaseURL  string        `validate:"omitempty,url"`
	Token    string        `json:"-"`
	Debounce time.Duration `default:"500ms" validate:"min=0"`
}
