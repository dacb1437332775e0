package classify

import "github.com/autofounder/deck-backend/internal/deck/domain"

// categoryThemes is a total mapping: every category has exactly one theme.
var categoryThemes = map[domain.Category]domain.ThemeKey{
	domain.CategoryFintech:     domain.ThemeInvestor,
	domain.CategoryDevtools:    domain.ThemeMinimal,
	domain.CategoryConsumer:    domain.ThemeBold,
	domain.CategoryB2BSaaS:     domain.ThemeInvestor,
	domain.CategoryHealthtech:  domain.ThemeClinical,
	domain.CategoryAIInfra:     domain.ThemeInfra,
	domain.CategoryMarketplace: domain.ThemeInvestor,
	domain.CategoryEdtech:      domain.ThemeMinimal,
	domain.CategoryClimate:     domain.ThemeEco,
	domain.CategoryOther:       domain.ThemeMinimal,
}

var themeAssets = map[domain.ThemeKey]domain.ThemeConfig{
	domain.ThemeInvestor: {
		CoverBg:     "/images/bg-cover-fintech-v1.png",
		ContentBg:   "/images/bg-content-fintech-v1.png",
		DefaultText: domain.ToneLight,
	},
	domain.ThemeMinimal: {
		CoverBg:     "/images/bg-cover-devtools-v1.png",
		ContentBg:   "/images/bg-content-devtools-v1.png",
		DefaultText: domain.ToneDark,
	},
	domain.ThemeBold: {
		CoverBg:     "/images/bg-cover-consumer-v1.png",
		ContentBg:   "/images/bg-content-consumer-v1.png",
		DefaultText: domain.ToneLight,
	},
	domain.ThemeClinical: {
		CoverBg:     "/images/bg-cover-healthtech-v1.png",
		ContentBg:   "/images/bg-content-healthtech-v1.png",
		DefaultText: domain.ToneDark,
	},
	domain.ThemeEco: {
		CoverBg:     "/images/bg-cover-climate-v1.png",
		ContentBg:   "/images/bg-content-climate-v1.png",
		DefaultText: domain.ToneDark,
	},
	domain.ThemeInfra: {
		CoverBg:     "/images/bg-cover-ai-infra-v1.png",
		ContentBg:   "/images/bg-content-ai-infra-v1.png",
		DefaultText: domain.ToneLight,
	},
}

// ResolveTheme maps a category to its theme key and asset set. Total over
// the closed category enum; unknown input falls back to minimal.
func ResolveTheme(cat domain.Category) (domain.ThemeKey, domain.ThemeConfig) {
	theme, ok := categoryThemes[cat]
	if !ok {
		theme = domain.ThemeMinimal
	}
	return theme, themeAssets[theme]
}
