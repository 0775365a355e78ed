package addresslookup

// Candidate один вариант адреса из ответа провайдера
type Candidate struct {
	Line1    string `json:"line_1"`
	Line2    string `json:"line_2"`
	Town     string `json:"post_town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// lookupResponse модель ответа провайдера
type lookupResponse struct {
	Addresses []Candidate `json:"addresses"`
}

// ErrorResponse модель ошибки провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
