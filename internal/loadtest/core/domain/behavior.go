package domain

// Behavior tags a scripted user profile.
type Behavior string

const (
	CasualBrowser   Behavior = "casual_browser"
	PhotoExplorer   Behavior = "photo_explorer"
	AnalyticsViewer Behavior = "analytics_viewer"
	APIUser         Behavior = "api_user"
	HeavyUser       Behavior = "heavy_user"
)

// Behaviors lists every profile in a fixed order; users pick one uniformly.
var Behaviors = []Behavior{
	CasualBrowser,
	PhotoExplorer,
	AnalyticsViewer,
	APIUser,
	HeavyUser,
}
