package model

type Review struct {
	BaseModel
	ProductID  int64  `db:"product_id" json:"product_id"`
	UserID     string `db:"user_id" json:"-"`
	UserName   string `db:"user_name" json:"user_name"`
	Rating     int    `db:"rating" json:"rating"`
	Comment    string `db:"comment" json:"comment"`
	IsVerified bool   `db:"is_verified" json:"is_verified"`
}
