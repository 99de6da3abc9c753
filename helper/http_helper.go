package helper

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"blogify/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// HTTPHelper validates requests and writes every JSON response envelope.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a validator with English error translations.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		slog.Warn("register validator translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// GetStatusCode maps a typed service error to its HTTP status. Untyped errors are 500.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		invalid      models.ErrorInvalidInput
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetMessage returns the client-facing text for err. Unknown errors never
// leak their cause.
func (u *HTTPHelper) GetMessage(err error) string {
	var internal models.ErrorInternalServer
	if errors.As(err, &internal) {
		return internal.Message
	}
	if u.GetStatusCode(err) == http.StatusInternalServerError {
		return models.MsgServerError
	}
	return err.Error()
}

// SendError aborts with the status and client-safe message for err, logging 500s.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
	}

	c.AbortWithStatusJSON(code, models.Envelope{Success: false, Message: u.GetMessage(err)})
}

// SendErrorMessage sends an envelope with an explicit status and message.
func (u *HTTPHelper) SendErrorMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, models.Envelope{Success: false, Message: message})
}

// SendBadRequest aborts with a 400 envelope.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendErrorMessage(c, http.StatusBadRequest, message)
}

// SendUnauthorizedError aborts with a 401 envelope.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendErrorMessage(c, http.StatusUnauthorized, message)
}

// SendValidationError aborts with a 400 envelope listing translated messages per snake_case field.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, models.ValidationErrorResponse{
		Envelope: models.Envelope{Success: false, Message: models.MsgInvalidBody},
		Errors:   errorResponse,
	})
}

// BindJSON decodes and validates the request body into req. It writes the
// error response itself and reports whether the handler may continue.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, models.MsgInvalidBody)
		return false
	}

	if err := u.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			u.SendValidationError(c, verrs)
			return false
		}
		u.SendBadRequest(c, models.MsgInvalidBody)
		return false
	}
	return true
}

// SendSuccess writes data with status 200, or a bare success envelope when data is nil.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	if data == nil {
		data = models.Envelope{Success: true}
	}
	c.JSON(http.StatusOK, data)
}

// ParsePaging reads page and limit from the query string. Missing or
// non-numeric values come back as zero so the service applies its defaults.
func (u *HTTPHelper) ParsePaging(c *gin.Context) models.PostListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.PostListParams{Page: page, Limit: limit}
}

// GetPagingUrl builds the absolute URL of the given page.
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
}

// GeneratePaging builds the pagination block for a listed page.
func (u *HTTPHelper) GeneratePaging(c *gin.Context, result *models.PostPage) models.Pagination {
	page, limit := result.Page, result.Limit
	totalPages := int(math.Ceil(float64(result.Total) / float64(limit)))

	var links models.PaginationLinks
	if page > 1 && page <= totalPages {
		links.Previous = u.GetPagingUrl(c, page-1, limit)
		links.First = u.GetPagingUrl(c, 1, limit)
	}
	if page < totalPages {
		links.Next = u.GetPagingUrl(c, page+1, limit)
		links.Last = u.GetPagingUrl(c, totalPages, limit)
	}

	return models.Pagination{
		CurrentCount: limit,
		TotalPosts:   result.Total,
		HasNextPage:  result.HasNextPage,
		CurrentPage:  page,
		TotalPages:   totalPages,
		Links:        links,
	}
}
