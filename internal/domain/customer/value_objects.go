package customer

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidName     = errors.New("name must be between 1 and 100 characters")
	ErrInvalidPhone    = errors.New("phone must be between 10 and 20 characters")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes long")
)

const (
	MaxNameLength  = 100
	MinPhoneLength = 10
	MaxPhoneLength = 20

	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored lower-cased; it is the upsert key for customers.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 1 || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < MinPhoneLength || n > MaxPhoneLength {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// ContactInfo is what a booking form submits for the person booking.
type ContactInfo struct {
	name  Name
	email Email
	phone Phone
}

func NewContactInfo(name, email, phone string) (ContactInfo, error) {
	n, err := NewName(name)
	if err != nil {
		return ContactInfo{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return ContactInfo{}, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return ContactInfo{}, err
	}
	return ContactInfo{name: n, email: e, phone: p}, nil
}

func (c ContactInfo) Name() Name   { return c.name }
func (c ContactInfo) Email() Email { return c.email }
func (c ContactInfo) Phone() Phone { return c.phone }

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
