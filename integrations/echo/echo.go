// Package echo provides adapters for using err-pipeline with the Echo
// framework.
package echo

import (
	errpipeline "github.com/blackwell-systems/err-pipeline"
	echofw "github.com/labstack/echo/v4"
)

// HTTPErrorHandler funnels every handler error through the pipeline and
// responds with the canonical error as JSON.
//
// Example:
//
//	e := echo.New()
//	e.HTTPErrorHandler = echopipe.HTTPErrorHandler(pipeline)
func HTTPErrorHandler(p *errpipeline.Pipeline) echofw.HTTPErrorHandler {
	return func(err error, c echofw.Context) {
		e := p.Handle(c.Request().Context(), err, "The request failed. Please retry.",
			c.Request().Method+" "+c.Path())
		if !c.Response().Committed {
			_ = c.JSON(e.HTTPStatus(), e)
		}
	}
}
