package request

type EmailRequest struct {
	Email string `json:"email" binding:"required,max=254"`
}

type CurrentWindowQuery struct {
	Purpose string `form:"purpose" binding:"required"`
	Email   string `form:"email" binding:"required"`
}

type ListEmailSendsQuery struct {
	Email string `form:"email" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
