package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// registerRequest accepts both JSON bodies and multipart form fields; the
// optional resume file travels alongside the form under the "resume" key.
type registerRequest struct {
	Username    string   `json:"username"    form:"username"    validate:"required"`
	FirstName   string   `json:"firstName"   form:"firstName"   validate:"required"`
	LastName    string   `json:"lastName"    form:"lastName"    validate:"required"`
	PhoneNumber string   `json:"phoneNumber" form:"phoneNumber" validate:"required"`
	Email       string   `json:"email"       form:"email"       validate:"required,email"`
	Password    string   `json:"password"    form:"password"    validate:"required"`
	Skills      []string `json:"skills"      form:"skills"`
	DOB         string   `json:"dob"         form:"dob"         validate:"required"`
	Role        string   `json:"role"        form:"role"        validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
