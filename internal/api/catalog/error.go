package catalog

import (
	"net/http"

	"ZencrowWebsite/pkg/response"
)

var (
	ErrServiceNotFound = response.NewError(http.StatusNotFound, "service not found")
)
