package service

// PasswordGenerator produces random passwords from a CSPRNG.
type PasswordGenerator interface {
	// Generate returns a password of the given length. If exclude is not
	// empty the result never contains it, compared case-insensitively.
	Generate(length int, exclude string) (string, error)
}
