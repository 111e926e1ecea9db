package models

// AccountSentiment maps an ISO date string ("2006-01-02") to an integer
// sentiment score in [0,100] for one account. Replaced wholesale each time
// the account is re-scored, never partially mutated.
type AccountSentiment map[string]int

// TrackedAccounts maps an account handle (without leading "@") to its
// display name. A handle appears at most once.
type TrackedAccounts map[string]string
