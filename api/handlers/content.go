// ABOUTME: Article content handler for the Huma API
// ABOUTME: Extracts readable article text for a news item URL

package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"newsiq-app-api/api/dto/responses"
	"newsiq-app-api/core/interfaces"
)

// ContentHandler serves readable article text for result URLs
type ContentHandler struct {
	extractor interfaces.ContentExtractor
}

// NewContentHandler creates a new content handler
func NewContentHandler(extractor interfaces.ContentExtractor) *ContentHandler {
	return &ContentHandler{extractor: extractor}
}

// RegisterRoutes registers content-related routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getArticleContent",
		Method:      http.MethodGet,
		Path:        "/articles/content",
		Summary:     "Extract readable text from an article URL",
		Tags:        []string{"Articles"},
	}, h.GetContent)
}

// GetContentInput defines the input for the GetContent operation
type GetContentInput struct {
	URL string `query:"url" required:"true" maxLength:"2048" doc:"Article URL to extract"`
}

// GetContentOutput defines the output for the GetContent operation
type GetContentOutput struct {
	Body responses.ArticleContentResponse
}

// GetContent handles the GET /articles/content endpoint
func (h *ContentHandler) GetContent(ctx context.Context, input *GetContentInput) (*GetContentOutput, error) {
	parsed, err := url.Parse(input.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, huma.Error400BadRequest("url must be a valid http or https URL")
	}

	content, err := h.extractor.ExtractContent(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetContentOutput{
		Body: responses.ArticleContentResponse{
			URL:     input.URL,
			Content: content,
		},
	}, nil
}
