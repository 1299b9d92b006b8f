package dto

type BlogPostSummary struct {
	ID            string   `json:"id"`
	RestaurantID  string   `json:"restaurantId"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Author        string   `json:"author"`
	PublishedAt   string   `json:"publishedAt"`
	PublishedDate string   `json:"publishedDate"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	Tags          []string `json:"tags"`
}

type ListBlogPostsResponse struct {
	Blogs []BlogPostSummary `json:"blogs"`
}
