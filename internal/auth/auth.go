package auth

// Authorizer gates commands to an optional allowlist of Telegram user IDs.
// An empty allowlist makes the bot public.
type Authorizer struct {
	allowedIDs map[int64]bool
}

func NewAuthorizer(ids []int64) *Authorizer {
	allowed := make(map[int64]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}
	return &Authorizer{allowedIDs: allowed}
}

func (a *Authorizer) IsAllowed(userID int64) bool {
	if len(a.allowedIDs) == 0 {
		return true
	}
	return a.allowedIDs[userID]
}
