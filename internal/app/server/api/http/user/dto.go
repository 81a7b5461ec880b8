package user

type Credentials struct {
	Login    string `json:"login" minLength:"3" maxLength:"32" doc:"Account login"`
	Password string `json:"password" minLength:"8" doc:"Account password"`
}

type registerInput struct {
	Body Credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
}

type loginInput struct {
	Body Credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token to revoke"`
}

type logoutOutput struct {
	Body StatusResponse
}

type changePasswordInput struct {
	Body ChangePasswordRequest
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" doc:"Current account password"`
	NewPassword string `json:"new_password" minLength:"8" doc:"New account password"`
}

type changePasswordOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
