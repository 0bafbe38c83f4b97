package dto

// Res is the generic response envelope.
type Res struct {
	ResponseCode    string      `json:"response_code"`
	ResponseMessage string      `json:"response_message"`
	Data            interface{} `json:"data,omitempty"`
}

type ResLogin struct {
	Res
	AccessToken string `json:"access_token,omitempty"`
}
