package domain

import (
	"errors"
	"strings"
	"time"
)

// User validation errors.
var (
	ErrEmptyLoginID        = errors.New("login ID cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account.
//
// Password holds the plaintext credential only for the duration of a
// create/update request and is never serialized or persisted; only
// HashedPassword crosses the storage boundary.
type User struct {
	ID             int64     `json:"user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	LoginID        string    `json:"login_id"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Email          string    `json:"email"`
	Country        string    `json:"country"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with the given profile fields and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored.
func NewUser(firstName, lastName, loginID, password, email, country string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName: firstName,
		LastName:  lastName,
		LoginID:   loginID,
		Password:  password,
		Email:     email,
		Country:   country,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User carries valid data.
func (u *User) Validate() error {
	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if u.LastName == "" {
		return ErrEmptyLastName
	}
	if u.LoginID == "" {
		return ErrEmptyLoginID
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	// bcrypt truncates input beyond 72 bytes, so longer passwords would
	// silently verify against their truncation.
	if len(u.Password) > 72 {
		return ErrPasswordTooLong
	}

	// A stored user with no plaintext password must carry a hash.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// validEmailFormat performs a structural check on an email address:
// exactly one @ with a dotted domain part. Format rejection beyond this is
// left to the request validation layer.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
