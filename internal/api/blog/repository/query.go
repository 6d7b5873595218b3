package blogRepository

const (
	queryCreatePost = `
		INSERT INTO posts (
			title,
			content,
			author,
			date_posted
		) VALUES (
			:title,
			:content,
			:author,
			:date_posted
		)
		RETURNING id
	`

	queryGetPostByID = `
		SELECT
			id,
			title,
			content,
			author,
			date_posted
		FROM posts
		WHERE id = :id
	`

	queryListPosts = `
		SELECT
			id,
			title,
			content,
			author,
			date_posted
		FROM posts
		ORDER BY date_posted DESC, id DESC
	`

	// %[1]s is the case-folding function of the driver; both sides go
	// through it so the term and the columns fold the same way.
	querySearchPosts = `
		SELECT
			id,
			title,
			content,
			author,
			date_posted
		FROM posts
		WHERE %[1]s(title) LIKE %[1]s(:pattern) ESCAPE '\'
			OR %[1]s(content) LIKE %[1]s(:pattern) ESCAPE '\'
		ORDER BY date_posted DESC, id DESC
	`
)
