package pkg

import "github.com/google/uuid"

// GenerateNewSessionID returns an id for a new player session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateBoardID returns an id for a new board instance.
func GenerateBoardID() string {
	return uuid.NewString()
}
