package request

type Signup struct {
	FirstName     string `json:"firstName" form:"firstName" validate:"required"`
	LastName      string `json:"lastName" form:"lastName" validate:"required"`
	Phone         string `json:"phone" form:"phone" validate:"required"`
	Dob           string `json:"dob" form:"dob" validate:"required,datetime=2006-01-02"`
	NID           string `json:"nid" form:"nid" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Password      string `json:"password" form:"password" validate:"required,min=6"`
	TermsAccepted bool   `json:"termsAccepted" form:"termsAccepted" validate:"required"`
}

type Login struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}
