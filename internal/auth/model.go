package auth

// User is the merchant account. BusinessName is what appears on bills.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	BusinessName string
}
