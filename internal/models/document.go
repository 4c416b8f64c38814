package models

import "time"

// Document is a row of the documents table. Data holds the JSON record.
type Document struct {
	Seq        int64
	Collection string
	DocumentID string
	Data       []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
