package blog

import "ZencrowWebsite/pkg/response"

var (
	ErrPostNotFound       = response.NewError(404, "post not found")
	ErrStorageUnavailable = response.NewErrorWithReason(503, "STORAGE_UNAVAILABLE", "The blog is temporarily unavailable. Please try again later.")
	ErrInvalidPostID      = response.NewError(400, "invalid post id")
	ErrInvalidSearchQuery = response.NewError(400, "search query is too long")
	ErrCreatePost         = response.NewError(500, "failed to create post")
)
