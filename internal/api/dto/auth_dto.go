package dto

// Result messages written by the auth filters.
const (
	ResultOK   = "OK"
	ResultFail = "FAIL"
)

// ResultResponse is the minimal envelope used for auth failures and logout.
type ResultResponse struct {
	ResultMsg string `json:"resultMsg"`
	Status    int    `json:"status"`
}

// LoginContent carries the authenticated subject and its access token.
type LoginContent struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
	Token    string `json:"token"`
}

// LoginResponse is written on successful login or refresh. Status is a string on this body.
type LoginResponse struct {
	ResultMsg string       `json:"resultMsg"`
	Status    string       `json:"status"`
	Content   LoginContent `json:"content"`
}

// LoginFailureResponse is written when credentials are rejected.
type LoginFailureResponse struct {
	ResultMsg string   `json:"resultMsg"`
	Status    int      `json:"status"`
	Content   struct{} `json:"content"`
}
