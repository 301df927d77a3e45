package user

import "github.com/google/uuid"

type (
	// User is the stored credential record. The hash never leaves the service.
	User struct {
		ID           uuid.UUID `json:"id"`
		Username     string    `json:"username"`
		PasswordHash string    `json:"-"` // Never serialize password hash
	}

	CredentialsIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// RegisterOut is the public view returned on registration: the stored
	// record with the hash stripped, plus a freshly issued token.
	RegisterOut struct {
		ID       uuid.UUID `json:"id"`
		Username string    `json:"username"`
		Token    string    `json:"token"`
	}
)
