package ui

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed about.md
var aboutMarkdown []byte

// renderAboutPage converts the embedded markdown intro into HTML once at
// server construction.
func renderAboutPage() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(aboutMarkdown, p, renderer)
}

func (s *Server) handleAbout(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.aboutPage)
}
