package domain

import "time"

type BoardType string

const (
	BoardTypeNotice BoardType = "Notice"
	BoardTypeQnA    BoardType = "QnA"
)

func (t BoardType) Valid() bool {
	return t == BoardTypeNotice || t == BoardTypeQnA
}

type Board struct {
	ID              int64     `json:"boardId"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	BoardType       BoardType `json:"boardType"`
	SalesMemberID   int64     `json:"-"`
	SalesMemberCode int64     `json:"salesMemberCode"`
	Deleted         bool      `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Answers         []*Answer `json:"answers,omitempty"`
}

type BoardRequest struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	BoardType BoardType `json:"boardType"`
}

type Answer struct {
	ID              int64     `json:"answer_id"`
	Content         string    `json:"content"`
	BoardID         int64     `json:"board_id"`
	SalesMemberID   int64     `json:"-"`
	SalesMemberName string    `json:"answer_name"`
	Deleted         bool      `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AnswerRequest struct {
	Content string `json:"content"`
}
