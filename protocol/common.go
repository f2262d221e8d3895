package protocol

type StringResponse struct {
	Code int    `json:"code"` //状态码
	Data string `json:"data"` //字符串数据
}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
