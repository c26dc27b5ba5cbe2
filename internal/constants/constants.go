package constants

// Centralized constants for headers, cookies, routes and log fields.
const (
	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"

	CacheControlHeader = "Cache-Control"
	CacheControlAssets = "public, max-age=86400"

	// Session cookie and token
	CookieSessionName = "duel_session"
	TokenIssuer       = "saber-duel"

	// Gin context keys set by the auth middleware
	ContextSessionID = "sessionID"

	// Portrait rendering
	PortraitSize = 256
)

// Routes used by the backend router
const (
	RouteHealth          = "/health"
	RouteAPIPrefix       = "/api"
	RouteRoster          = "/roster"
	RouteVersion         = "/version"
	RouteAssetsPortraits = "/assets/portraits"
	RouteSessions        = "/sessions"
	RouteSessionByID     = "/sessions/:sessionID"
	RouteSessionPlayer   = "/sessions/:sessionID/player"
	RouteSessionEnemy    = "/sessions/:sessionID/enemy"
	RouteSessionAttack   = "/sessions/:sessionID/attack"
	RouteSessionReset    = "/sessions/:sessionID/reset"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyChanged = "changed"
	JSONKeySession = "session"
	JSONKeyRound   = "round"
	JSONKeyToken   = "token"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidSessionID     = "Invalid session ID"
	ErrSessionNotFound      = "Session not found"
	ErrFailedCreateSession  = "Failed to create session"
	ErrFailedUpdateSession  = "Failed to update session"
	ErrFailedLoadSession    = "Failed to load session"
	ErrUnknownCharacter     = "Unknown character"
	ErrCharacterUnavailable = "Character is not available as an opponent"
	ErrAuthRequired         = "Authentication required"
	ErrInvalidSession       = "Invalid session"
	ErrSessionMismatch      = "Session does not belong to caller"
	ErrPortraitNotFound     = "Portrait not found"
	ErrFailedRenderPortrait = "Failed to render portrait"
	ErrFailedEndSession     = "Failed to end session"
)

// Informational messages
const (
	MsgSessionEnded = "Session ended"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldCharacter = "character"
	LogFieldOutcome   = "outcome"
	LogFieldRound     = "round"
	LogFieldChanged   = "changed"
	LogFieldKey       = "key"
	LogFieldAddr      = "addr"
	LogFieldCount     = "count"
	LogFieldPath      = "path"
	LogFieldConfig    = "config_path"
)
