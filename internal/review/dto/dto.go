package dto

type CreateReviewInput struct {
	ProductID int64
	UserID    string
	UserName  string
	Rating    int
	Comment   string
}
