package articles

import "github.com/adelbrx/blogs/blog/articles"

// wraps a list of articles
type ArticlesListResponse struct {
	Articles []articles.Article `json:"articles"`
}

// for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
