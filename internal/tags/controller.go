package tags

import (
	"errors"
	"net/http"
	"strings"

	"blogtags/internal/shared/constants"
	"blogtags/internal/shared/utils/response"
	"blogtags/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller interface {
	GenerateTags(c *gin.Context)
}

type controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service, log *logger.Logger) Controller {
	return &controller{service: service, log: log}
}

// GenerateTags godoc
// @Summary      Generate tags for a blog post title
// @Description  Builds a prompt from the title and count, calls the completion provider and returns the cleaned comma-joined tags.
// @Tags         tags
// @Produce      json
// @Param        title  query     string   true  "Blog post title"
// @Param        size   query     integer  true  "Number of tags (0-10)"
// @Success      200    {object}  response.TagApiResponse
// @Failure      400    {object}  response.TagApiResponse
// @Failure      405    {object}  response.TagApiResponse
// @Failure      502    {object}  response.TagApiResponse
// @Router       /gpt [get]
func (ctrl *controller) GenerateTags(c *gin.Context) {
	log := ctrl.log.WithRequestID(c.GetString(logger.RequestIDKey))

	var query GenerateTagsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Debug("rejected tag request", "error", ErrMissingParams.Error(), "missing", missingFields(err))
		response.RespondError(c, http.StatusBadRequest, constants.MSG_MISSING_PARAMS)
		return
	}

	size, err := ParseSize(query.Size)
	if err != nil {
		log.Debug("rejected tag request", "error", err.Error())
		response.RespondError(c, http.StatusBadRequest, constants.MSG_INVALID_SIZE)
		return
	}

	tags, err := ctrl.service.GenerateTags(c.Request.Context(), TagRequest{Title: query.Title, Size: size})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrProviderFailed) {
			statusCode = http.StatusBadGateway
		}
		log.LogHTTPError(c, err, statusCode)
		response.RespondError(c, statusCode, constants.MSG_PROVIDER_FAILED)
		return
	}

	response.RespondTags(c, http.StatusOK, tags)
}

// missingFields lists the query parameters that failed the required check
func missingFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return strings.Join(fields, ",")
}
