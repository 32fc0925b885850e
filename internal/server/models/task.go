package models

import "time"

// Task is a single to-do item owned by one account.
type Task struct {
	ID        string    `db:"id" dynamodbav:"id" json:"id"`
	Email     string    `db:"email" dynamodbav:"email" json:"-"`
	Title     string    `db:"title" dynamodbav:"title" json:"title"`
	Completed bool      `db:"completed" dynamodbav:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" dynamodbav:"createdAt" json:"createdAt"`
}
