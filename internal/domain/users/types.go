package users

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	ErrInvalidRole       = errors.New("invalid role")
	QueryTimeoutDuration = time.Second * 5
)

// PasswordCost is the bcrypt cost used for local accounts.
const PasswordCost = 10

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
)

// ParseRole accepts exactly one of the known roles. An empty value yields the customer role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RoleCustomer, nil
	case RoleCustomer, RoleVendor, RoleAdmin, RoleStaff:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// Title is used in "<Role> access required" messages.
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

type AuthType string

const (
	AuthTypeLocal     AuthType = "local"
	AuthTypeFederated AuthType = "federated"
)

type User struct {
	ID         int64          `json:"id"`
	FullName   string         `json:"fullname"`
	Email      string         `json:"email"`
	Role       Role           `json:"role" swaggertype:"string" enums:"customer,vendor,admin,staff"`
	AuthType   AuthType       `json:"authType" swaggertype:"string" enums:"local,federated"`
	ProviderID sql.NullString `json:"-"`
	Password   password       `json:"-"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// NormalizeEmail is applied before every write and lookup so email stays case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type password struct {
	text *string
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), PasswordCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

// Compare fails for federated accounts, which carry no hash.
func (p *password) Compare(text string) error {
	if len(p.hash) == 0 {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

func (p *password) IsSet() bool {
	return len(p.hash) > 0
}
