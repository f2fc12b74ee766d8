package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"blogtags/internal/composer"
	"blogtags/internal/shared/constants"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData feeds templates/index.tmpl
type PageData struct {
	SeoTitle       string
	SeoDescription string
	Placeholder    string
	TitleLimit     int
	MinCount       int
	MaxCount       int
	Formats        []composer.Format
	DefaultFormat  composer.Format
	Endpoint       string
	CopiedMessage  string
	NoticeMillis   int64
}

func NewPageData(apiBasePath string) PageData {
	return PageData{
		SeoTitle:       constants.SEO_TITLE,
		SeoDescription: constants.SEO_DESCRIPTION,
		Placeholder:    constants.TITLE_PLACEHOLDER,
		TitleLimit:     constants.TITLE_CHARACTER_LIMIT,
		MinCount:       constants.MIN_TAG_COUNT,
		MaxCount:       constants.MAX_TAG_COUNT,
		Formats:        composer.Formats,
		DefaultFormat:  composer.DefaultFormat,
		Endpoint:       apiBasePath + "/gpt",
		CopiedMessage:  constants.MSG_COPIED,
		NoticeMillis:   constants.COPY_NOTICE_TTL.Milliseconds(),
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// StaticFiles returns the embedded assets rooted at the static directory
func StaticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

type Controller interface {
	Index(c *gin.Context)
}

type controller struct {
	page PageData
}

func NewController(page PageData) Controller {
	return &controller{page: page}
}

func (ctrl *controller) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", ctrl.page)
}

// SetupWebRoutes serves the page at / and its assets under /static
func SetupWebRoutes(router *gin.Engine, controller Controller) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/", controller.Index)
	router.StaticFS("/static", StaticFiles())
	return nil
}
