package models

import (
	"database/sql"
	"fmt"
	"time"
)

// CreatePost inserts a post owned by id and returns the stored record.
func CreatePost(db *sql.DB, id Identity, title, body string) (*Post, error) {
	now := time.Now().UTC()
	res, err := db.Exec(`INSERT INTO blogs (creator_user_id, creator_name, title, body, date_created) VALUES (?, ?, ?, ?, ?)`,
		id.UserID, id.Name, title, body, now)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	blogID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &Post{
		BlogID:        blogID,
		CreatorUserID: id.UserID,
		CreatorName:   id.Name,
		Title:         title,
		Body:          body,
		DateCreated:   now,
	}, nil
}

// ListPosts returns all posts, newest first.
func ListPosts(db *sql.DB) ([]Post, error) {
	rows, err := db.Query(`SELECT blog_id, creator_user_id, creator_name, title, body, date_created
		FROM blogs ORDER BY date_created DESC, blog_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.BlogID, &p.CreatorUserID, &p.CreatorName, &p.Title, &p.Body, &p.DateCreated); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func GetPost(db *sql.DB, blogID int64) (*Post, error) {
	row := db.QueryRow(`SELECT blog_id, creator_user_id, creator_name, title, body, date_created
		FROM blogs WHERE blog_id = ?`, blogID)
	var p Post
	err := row.Scan(&p.BlogID, &p.CreatorUserID, &p.CreatorName, &p.Title, &p.Body, &p.DateCreated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post: %w", err)
	}
	return &p, nil
}

// UpdatePost replaces title and body only. Creator fields, the blog id and
// the creation time never change.
func UpdatePost(db *sql.DB, blogID int64, title, body string) error {
	res, err := db.Exec(`UPDATE blogs SET title = ?, body = ? WHERE blog_id = ?`, title, body, blogID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeletePost(db *sql.DB, blogID int64) error {
	res, err := db.Exec(`DELETE FROM blogs WHERE blog_id = ?`, blogID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
