package styles

// Glyphs used by the panel and CLI output. Emoji render in any modern
// terminal without a patched font.
var (
	IconGlobe    = "🌍"
	IconPin      = "📍"
	IconCity     = "🏙"
	IconStar     = "⭐"
	IconCalendar = "📅"
	IconTrophy   = "🏆"
	IconPlane    = "✈"
)

// Tree and list markers.
var (
	IconExpanded  = "▾"
	IconCollapsed = "▸"
	IconBullet    = "•"
)

// Check results.
var (
	IconPass = "✔"
	IconWarn = "●"
	IconFail = "✘"
)
