// Package gin provides adapters for using err-pipeline with the Gin
// framework.
package gin

import (
	errpipeline "github.com/blackwell-systems/err-pipeline"
	"github.com/gin-gonic/gin"
)

// Errors drains c.Errors after the handler chain, funnelling each through
// the pipeline, and writes the last canonical error as JSON when nothing
// was written yet.
//
// Example:
//
//	r := gin.New()
//	r.Use(ginpipe.Errors(pipeline))
//	r.GET("/user", func(c *gin.Context) {
//	    c.Error(fmt.Errorf("lookup failed"))
//	})
func Errors(p *errpipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		var last *errpipeline.Error
		for _, ge := range c.Errors {
			last = p.Handle(c.Request.Context(), ge.Err, "The request failed. Please retry.",
				c.Request.Method+" "+c.FullPath())
		}

		if !c.Writer.Written() {
			c.JSON(last.HTTPStatus(), last)
		}
	}
}
