package domain

// SessionHolder holds at most one "current member" reference derived from the
// roster. The held value must stay consistent with the store after any
// mutation affecting the same member; Refresh is the synchronization point.
type SessionHolder interface {
	// Set replaces the current member reference.
	Set(member *Member)
	// Current returns a copy of the current member, or false when anonymous.
	Current() (*Member, bool)
	// Refresh replaces the held reference with the given member, but only if
	// it is the same identity (by id) as the one currently held.
	Refresh(member *Member)
	// Clear drops the current member reference. The roster is untouched.
	Clear()
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated member.
type TokenIssuer interface {
	Issue(memberID, email string) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated member ID.
type TokenVerifier interface {
	Verify(token string) (memberID string, err error)
}

// PasswordHasher hashes signup passwords. Passwords are never verified in this
// system; hashes are produced and discarded so plaintext never leaves the
// handler.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
