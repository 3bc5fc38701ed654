package models

import (
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user id is unknown so that both
// authentication failures cost the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("blog-dummy-password"), bcrypt.DefaultCost)

func CreateUser(db *sql.DB, userID, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	_, err = db.Exec(`INSERT INTO users (user_id, password_hash, name) VALUES (?, ?, ?)`, userID, string(hash), name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.user_id") {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

func GetUser(db *sql.DB, userID string) (*User, error) {
	row := db.QueryRow(`SELECT user_id, password_hash, name, created_at FROM users WHERE user_id = ?`, userID)
	var u User
	err := row.Scan(&u.UserID, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// Authenticate checks the (user id, password) pair. It fails with the same
// error whether the user id is unknown or the password is wrong.
func Authenticate(db *sql.DB, userID, password string) (*User, error) {
	u, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
