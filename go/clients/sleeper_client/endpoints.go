package sleeper_client

const (
	// Base URL
	BaseURL = "https://api.sleeper.app/v1"

	// API Endpoints
	LeagueEndpoint       = "/league/%s"
	LeagueUsersEndpoint  = "/league/%s/users"
	RostersEndpoint      = "/league/%s/rosters"
	TransactionsEndpoint = "/league/%s/transactions/%d"
	DraftsEndpoint       = "/league/%s/drafts"
	DraftPicksEndpoint   = "/draft/%s/picks"
	UserEndpoint         = "/user/%s"
	UserLeaguesEndpoint  = "/user/%s/leagues/%s/%s"

	// Sports
	SportNFL = "nfl"

	// Transaction fields
	TransactionTypeTrade      = "trade"
	TransactionStatusComplete = "complete"

	// Draft statuses
	DraftStatusComplete = "complete"
)
