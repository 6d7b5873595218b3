package contact

import "ZencrowWebsite/pkg/response"

var (
	ErrInvalidForm = response.NewError(400, "invalid contact form body")
)
