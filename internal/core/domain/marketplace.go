package domain

// MarketplaceName is the fixed name of the local marketplace pluginsmith
// installs plugins into.
const MarketplaceName = "local-cli-uploads"

// Marketplace is the manifest of the local plugin marketplace.
type Marketplace struct {
	Name        string             `json:"name"`
	Version     string             `json:"version"`
	Description string             `json:"description"`
	Owner       MarketplaceOwner   `json:"owner"`
	Plugins     []MarketplaceEntry `json:"plugins"`
}

// MarketplaceOwner identifies who maintains the marketplace.
type MarketplaceOwner struct {
	Name string `json:"name"`
}

// MarketplaceEntry is one installed plugin in the manifest.
type MarketplaceEntry struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Author      MarketplaceAuthor `json:"author"`
	Source      string            `json:"source"`
	Category    string            `json:"category"`
}

// MarketplaceAuthor is the author record in a marketplace entry.
type MarketplaceAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// EmptyMarketplace returns a manifest with no plugins.
func EmptyMarketplace() Marketplace {
	return Marketplace{
		Name:        MarketplaceName,
		Version:     "1.0.0",
		Description: "Locally created plugins via pluginsmith",
		Owner:       MarketplaceOwner{Name: "Local User"},
		Plugins:     []MarketplaceEntry{},
	}
}
