package entity

import "time"

type Post struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	Author     string    `db:"author"`
	DatePosted time.Time `db:"date_posted"`
}
