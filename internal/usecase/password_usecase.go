package usecase

// GeneratePasswordRequest describes a generation request
type GeneratePasswordRequest struct {
	Length  int    // Zero selects the configured default
	Exclude string // Typically a username that must not appear in the result
}

// PasswordUsecase defines password generation use cases
type PasswordUsecase interface {
	// Generate returns a random password honoring the configured limits
	Generate(req GeneratePasswordRequest) (string, error)
}
