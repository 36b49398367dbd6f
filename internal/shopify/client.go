// Package shopify publishes generated blog posts through the Shopify Admin
// REST API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

const apiVersion = "2024-07"

// defaultAuthor is the byline attached to auto-published articles.
const defaultAuthor = "Chamkili AI Writer"

// APIError is a non-2xx response from the Shopify Admin API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify API error (status %d): %s", e.StatusCode, e.Body)
}

// Blog is a Shopify blog container for articles.
type Blog struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

// Article is a published Shopify article.
type Article struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Tags  string `json:"tags"`
}

// Client issues authenticated calls against one store's Admin API.
type Client struct {
	storeName   string
	accessToken string
	baseURL     string
	httpClient  *http.Client
	logger      *log.Logger
}

// New creates a Client for a store. A nil httpClient gets a 30s-timeout default.
func New(storeName, accessToken string, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	if storeName == "" || accessToken == "" {
		return nil, errors.New("store name and access token are required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		storeName:   storeName,
		accessToken: accessToken,
		baseURL:     fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", storeName, apiVersion),
		httpClient:  httpClient,
		logger:      logger,
	}, nil
}

// WithBaseURL returns a copy of the client pointed at a different API base
// URL, for tests. The receiver is left untouched.
func (c *Client) WithBaseURL(baseURL string) *Client {
	derived := *c
	derived.baseURL = strings.TrimRight(baseURL, "/")
	return &derived
}

// request issues one authenticated API call and decodes the JSON response
// into out (when out is non-nil).
func (c *Client) request(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Blogs lists the store's blogs.
func (c *Client) Blogs(ctx context.Context) ([]Blog, error) {
	var result struct {
		Blogs []Blog `json:"blogs"`
	}
	if err := c.request(ctx, http.MethodGet, "blogs.json", nil, &result); err != nil {
		return nil, err
	}
	return result.Blogs, nil
}

// CreateBlog creates a new blog container.
func (c *Client) CreateBlog(ctx context.Context, title, handle string) (*Blog, error) {
	payload := map[string]any{
		"blog": map[string]any{
			"title":       title,
			"handle":      handle,
			"commentable": "yes",
		},
	}
	var result struct {
		Blog Blog `json:"blog"`
	}
	if err := c.request(ctx, http.MethodPost, "blogs.json", payload, &result); err != nil {
		return nil, err
	}
	return &result.Blog, nil
}

// GetOrCreateBlog returns the store's first blog, creating the Chamkili
// beauty blog when none exists.
func (c *Client) GetOrCreateBlog(ctx context.Context) (*Blog, error) {
	blogs, err := c.Blogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(blogs) > 0 {
		c.logger.Printf("[shopify] using existing blog: %s", blogs[0].Title)
		return &blogs[0], nil
	}

	c.logger.Printf("[shopify] no blog found, creating one")
	return c.CreateBlog(ctx, "Chamkili Beauty Blog", "chamkili-beauty-blog")
}

// CreateArticle publishes a generated blog post, attaching its SEO metadata
// as global metafields.
func (c *Client) CreateArticle(ctx context.Context, blogID int64, post *types.BlogPost) (*Article, error) {
	payload := map[string]any{
		"article": map[string]any{
			"title":     post.Title,
			"author":    defaultAuthor,
			"body_html": post.Body,
			"published": true,
			"tags":      strings.Join(post.Tags, ", "),
			"metafields": []map[string]any{
				{
					"key":       "title_tag",
					"namespace": "global",
					"value":     post.MetaTitle,
					"type":      "single_line_text_field",
				},
				{
					"key":       "description_tag",
					"namespace": "global",
					"value":     post.MetaDescription,
					"type":      "single_line_text_field",
				},
			},
		},
	}

	var result struct {
		Article Article `json:"article"`
	}
	endpoint := fmt.Sprintf("blogs/%d/articles.json", blogID)
	if err := c.request(ctx, http.MethodPost, endpoint, payload, &result); err != nil {
		return nil, err
	}

	c.logger.Printf("[shopify] article published, id=%d", result.Article.ID)
	return &result.Article, nil
}
