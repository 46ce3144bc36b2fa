// ABOUTME: Template-driven summary generation for aggregated news items
// ABOUTME: Renders deterministic markdown per response style with a source-links section

package summary

import (
	"context"
	"fmt"
	"strings"

	"newsiq-app-api/core/domain"
	"newsiq-app-api/core/interfaces"
)

const (
	// StyleProfessional is the default business-summary rendering
	StyleProfessional = "professional"
	StyleCasual       = "casual"
	StyleExecutive    = "executive"
	StyleBullet       = "bullet"
	StyleTechnical    = "technical"
)

const (
	maxSummaryItems  = 5
	maxCasualItems   = 3
	maxTitleInLink   = 70
	highImpactCutoff = 7.0
)

// Service renders styled markdown summaries from ranked news items. The
// output is fully determined by its inputs, which keeps responses
// reproducible and testable.
type Service struct {
	deps *interfaces.Dependencies
}

func NewService(deps *interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Summarize renders the items as markdown in the requested style.
// Unknown styles fall back to the professional rendering. An empty item
// list yields a guidance message rather than an error.
func (s *Service) Summarize(ctx context.Context, items []domain.NewsItem, style, entity string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(items) == 0 {
		return fmt.Sprintf("No recent news found for %s. Please try again or check the company name.", entity), nil
	}

	var b strings.Builder

	switch normalizeStyle(style) {
	case StyleBullet:
		renderBullets(&b, items, entity)
	case StyleCasual:
		renderCasual(&b, items, entity)
	case StyleExecutive:
		renderProfessional(&b, items, entity)
		b.WriteString("\nStrategic Implications: Monitor these developments closely as they may impact market positioning and competitive landscape.\n")
	case StyleTechnical:
		renderProfessional(&b, items, entity)
		renderTrend(&b, items)
	default:
		renderProfessional(&b, items, entity)
	}

	renderSourceLinks(&b, items)

	s.deps.Logger.Debug("Summary generated", map[string]interface{}{
		"entity": entity,
		"style":  style,
		"items":  len(items),
	})

	return b.String(), nil
}

func normalizeStyle(style string) string {
	lower := strings.ToLower(style)
	switch {
	case strings.Contains(lower, "bullet"):
		return StyleBullet
	case strings.Contains(lower, "casual"):
		return StyleCasual
	case strings.Contains(lower, "executive"):
		return StyleExecutive
	case strings.Contains(lower, "technical"):
		return StyleTechnical
	default:
		return StyleProfessional
	}
}

func renderProfessional(b *strings.Builder, items []domain.NewsItem, entity string) {
	fmt.Fprintf(b, "## Business Summary for %s\n\n", entity)
	b.WriteString("Based on recent news analysis, here are the key developments:\n\n")
	for _, item := range capItems(items, maxSummaryItems) {
		fmt.Fprintf(b, "**%s**\n", item.Title)
		fmt.Fprintf(b, "Impact Assessment: %.1f/10 | Source: %s\n", item.ImpactScore, item.Source)
		fmt.Fprintf(b, "[Full Article](%s)\n\n", item.URL)
	}

	if high := highImpactCount(items); high > 0 {
		fmt.Fprintf(b, "Key developments include %d high-impact stories.\n", high)
	}
}

func renderBullets(b *strings.Builder, items []domain.NewsItem, entity string) {
	fmt.Fprintf(b, "## Latest News for %s\n\n", entity)
	for _, item := range capItems(items, maxSummaryItems) {
		fmt.Fprintf(b, "- **%s** (Impact: %.1f/10)\n", item.Title, item.ImpactScore)
		fmt.Fprintf(b, "  *Source: %s* - [Read More](%s)\n\n", item.Source, item.URL)
	}
}

func renderCasual(b *strings.Builder, items []domain.NewsItem, entity string) {
	fmt.Fprintf(b, "## Hey! Here's what's happening with %s:\n\n", entity)
	for _, item := range capItems(items, maxCasualItems) {
		fmt.Fprintf(b, "**%s** - This seems pretty important (impact score: %.1f/10). ", item.Title, item.ImpactScore)
		fmt.Fprintf(b, "You can [check it out here](%s).\n\n", item.URL)
	}
}

func renderTrend(b *strings.Builder, items []domain.NewsItem) {
	counts := make(map[domain.ContentType]int)
	for _, item := range items {
		counts[contentTypeOf(item)]++
	}

	leading := domain.ContentGeneral
	best := 0
	for _, item := range items {
		ct := contentTypeOf(item)
		if counts[ct] > best {
			best = counts[ct]
			leading = ct
		}
	}

	fmt.Fprintf(b, "\nCurrent news trends show a focus on %s developments.\n", strings.ToLower(string(leading)))
}

func renderSourceLinks(b *strings.Builder, items []domain.NewsItem) {
	b.WriteString("\n**Sources:**\n")
	for i, item := range capItems(items, maxSummaryItems) {
		fmt.Fprintf(b, "%d. [%s](%s) - Impact: %.1f/10\n", i+1, truncateTitle(item.Title), item.URL, item.ImpactScore)
	}
}

func contentTypeOf(item domain.NewsItem) domain.ContentType {
	if item.ContentType == "" {
		return domain.ContentGeneral
	}
	return item.ContentType
}

func highImpactCount(items []domain.NewsItem) int {
	count := 0
	for _, item := range items {
		if item.ImpactScore >= highImpactCutoff {
			count++
		}
	}
	return count
}

func capItems(items []domain.NewsItem, max int) []domain.NewsItem {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncateTitle(title string) string {
	if len(title) > maxTitleInLink {
		return title[:maxTitleInLink] + "..."
	}
	return title
}
