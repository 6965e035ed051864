package sections

import (
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// roleKeywords maps keyword groups to roles. Order matters: the first
// group with a matching keyword wins, so a title like "API Overview"
// classifies as overview.
var roleKeywords = []struct {
	role     domain.SectionRole
	keywords []string
}{
	{domain.RoleOverview, []string{"overview", "introduction", "about"}},
	{domain.RoleAPIReference, []string{"api", "endpoint", "reference"}},
	{domain.RoleCodeExample, []string{"example", "sample", "demo"}},
	{domain.RoleConfiguration, []string{"config", "setup", "setting"}},
	{domain.RoleInstallation, []string{"install", "getting started", "prerequisite"}},
	{domain.RoleUsage, []string{"usage", "guide", "tutorial", "how to"}},
	{domain.RoleTroubleshooting, []string{"troubleshoot", "faq", "error", "debug"}},
}

// Classify infers a section role from its title by keyword matching.
func Classify(title string) domain.SectionRole {
	lower := strings.ToLower(title)
	for _, group := range roleKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.role
			}
		}
	}
	return domain.RoleOther
}
