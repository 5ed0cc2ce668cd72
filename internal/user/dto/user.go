package dto

type EditUserRequest struct {
	ID          int    `json:"id" binding:"required"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Password    string `json:"password"`
}

type DeleteUsersRequest struct {
	Ids []int `json:"ids" binding:"required"`
}
