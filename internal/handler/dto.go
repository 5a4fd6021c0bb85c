package handler

type GenerateRequest struct {
	CategoryIDs   []int64  `json:"categoryIds"`
	CategoryNames []string `json:"categoryNames"`
	Count         int      `json:"count"`
	Language      string   `json:"language"`
	RSSOnly       bool     `json:"rssOnly"`
}

type GenerateResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Articles []ArticleResponse `json:"articles"`
	Mode     string            `json:"mode"`
}

type ArticleResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featured_image"`
	CategoryID    int64    `json:"category_id"`
	AuthorID      *string  `json:"author_id"`
	Status        string   `json:"status"`
	IsBreaking    bool     `json:"is_breaking"`
	IsFeatured    bool     `json:"is_featured"`
	ReadTime      int      `json:"read_time"`
	Tags          []string `json:"tags"`
	PublishedAt   string   `json:"published_at"`
}

type ImageRequest struct {
	Prompt string `json:"prompt"`
	Slug   string `json:"slug"`
}

type ImageResponse struct {
	ImageURL    string `json:"imageUrl"`
	Placeholder bool   `json:"placeholder,omitempty"`
}
