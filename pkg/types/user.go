package types

// User is a singleton row holding the shared password hash. It is created
// on first start and only ever mutated by a password change.
type User struct {
	ID           int64  `json:"id" db:"id"`
	PasswordHash string `json:"-" db:"password_hash"`
	UpdatedAt    int64  `json:"updated_at" db:"updated_at"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}
