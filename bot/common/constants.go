package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorError   = 0xED4245 // Red (alias for ColorDanger)
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Embed limits imposed by Discord
const (
	MaxFieldValueLength  = 1024
	MaxDescriptionLength = 4096
	MaxFieldsPerEmbed    = 25
	MaxOptionChoices     = 25
)

// Slash command option limits
const (
	MaxFactorialInput   = 170
	MaxSetSize          = 100
	MaxTrialsPerCommand = 10000
)
